package config

import (
	"time"

	"github.com/juristech/prazo/internal/domain/calendar"
)

// ApplyDefaults fills every unset field with its production default.
// Called before Validate so a minimal configuration file stays valid.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}

	if c.Calendar.TTL <= 0 {
		c.Calendar.TTL = calendar.DefaultTTL
	}
	if c.Calendar.FetchTimeout <= 0 {
		c.Calendar.FetchTimeout = calendar.DefaultFetchTimeout
	}

	if c.Registry.Port == 0 {
		c.Registry.Port = 5432
	}
	if c.Registry.SSLMode == "" {
		c.Registry.SSLMode = "disable"
	}
	if c.Registry.MigrationsPath == "" {
		c.Registry.MigrationsPath = "internal/infrastructure/registry/postgres/migrations"
	}

	if c.Redis.DialTimeout <= 0 {
		c.Redis.DialTimeout = 5 * time.Second
	}
}

//Personal.AI order the ending
