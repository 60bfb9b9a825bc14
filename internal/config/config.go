// Package config defines the engine configuration tree and its viper-based
// loader.  Sections map 1:1 to the components they configure; components
// never read viper directly.
package config

import (
	"fmt"
	"time"

	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/infrastructure/database/redis"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/internal/infrastructure/registry/postgres"
	"github.com/juristech/prazo/pkg/errors"
)

// StaticHoliday is one configuration-seeded tribunal holiday, used when the
// postgres registry is disabled.
type StaticHoliday struct {
	Date  string `mapstructure:"date" yaml:"date"`
	Name  string `mapstructure:"name" yaml:"name"`
	Scope string `mapstructure:"scope" yaml:"scope"`
}

// TribunalConfig declares one tribunal the engine serves.
type TribunalConfig struct {
	ID       string          `mapstructure:"id" yaml:"id"`
	Holidays []StaticHoliday `mapstructure:"holidays" yaml:"holidays"`
}

// CalendarConfig configures the calendar store.
type CalendarConfig struct {
	// TTL is the per-calendar freshness window.
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl"`

	// FetchTimeout bounds one registry fetch.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`

	// DefaultTribunal answers requests for unlisted tribunals; empty means
	// unlisted tribunals are rejected.
	DefaultTribunal string `mapstructure:"default_tribunal" yaml:"default_tribunal"`

	Tribunals []TribunalConfig `mapstructure:"tribunals" yaml:"tribunals"`
}

// TribunalIDs returns the declared tribunal identifiers.
func (c CalendarConfig) TribunalIDs() []string {
	out := make([]string, 0, len(c.Tribunals))
	for _, t := range c.Tribunals {
		out = append(out, t.ID)
	}
	return out
}

// StaticHolidayTable converts the configured holidays into the shape the
// static holiday source consumes.
func (c CalendarConfig) StaticHolidayTable() (map[string][]calendar.Holiday, error) {
	table := make(map[string][]calendar.Holiday, len(c.Tribunals))
	for _, t := range c.Tribunals {
		for _, sh := range t.Holidays {
			d, err := calendar.ParseDate(sh.Date)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeValidation,
					fmt.Sprintf("tribunal %s has an invalid holiday date %q", t.ID, sh.Date))
			}
			scope := calendar.HolidayScope(sh.Scope)
			if scope == "" {
				scope = calendar.ScopeTribunal
			}
			table[t.ID] = append(table[t.ID], calendar.Holiday{Date: d, Name: sh.Name, Scope: scope})
		}
	}
	return table, nil
}

// Config is the full engine configuration tree.
type Config struct {
	Log      logging.LogConfig `mapstructure:"log" yaml:"log"`
	Calendar CalendarConfig    `mapstructure:"calendar" yaml:"calendar"`
	Registry postgres.Config   `mapstructure:"registry" yaml:"registry"`
	Redis    redis.Config      `mapstructure:"redis" yaml:"redis"`
}

// Validate checks cross-field consistency after defaults were applied.
func (c *Config) Validate() error {
	if len(c.Calendar.Tribunals) == 0 {
		return errors.New(errors.ErrCodeValidation, "at least one tribunal must be configured")
	}
	seen := map[string]struct{}{}
	for _, t := range c.Calendar.Tribunals {
		if t.ID == "" {
			return errors.New(errors.ErrCodeValidation, "tribunal entries require an id")
		}
		if _, dup := seen[t.ID]; dup {
			return errors.New(errors.ErrCodeValidation,
				fmt.Sprintf("tribunal %s declared twice", t.ID))
		}
		seen[t.ID] = struct{}{}
	}
	if c.Calendar.DefaultTribunal != "" {
		if _, ok := seen[c.Calendar.DefaultTribunal]; !ok {
			return errors.New(errors.ErrCodeValidation,
				fmt.Sprintf("default tribunal %s is not declared", c.Calendar.DefaultTribunal))
		}
	}
	if _, err := c.Calendar.StaticHolidayTable(); err != nil {
		return err
	}
	if c.Registry.Enabled {
		if err := c.Registry.Validate(); err != nil {
			return err
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New(errors.ErrCodeValidation, "redis is enabled but addr is empty")
	}
	return nil
}

//Personal.AI order the ending
