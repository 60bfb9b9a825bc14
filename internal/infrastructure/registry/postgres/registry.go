// Package postgres implements the tribunal holiday registry: the production
// calendar.HolidaySource backed by a Postgres table maintained by the court
// data ingestion jobs.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
)

// Config carries the registry database parameters.
type Config struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`
	SSLMode  string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// MaxConns caps the pool size.  Zero keeps the pgxpool default.
	MaxConns int32 `mapstructure:"max_conns" yaml:"max_conns"`

	// MigrationsPath points at the SQL migration directory.
	MigrationsPath string `mapstructure:"migrations_path" yaml:"migrations_path"`

	// Enabled toggles the registry; when false the engine uses the static
	// or nop holiday source instead.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// DSN renders the keyword/value connection string.
func (c Config) DSN() string {
	ssl := c.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, ssl)
}

// Validate checks the fields required to connect.
func (c Config) Validate() error {
	if c.Host == "" || c.Database == "" || c.User == "" {
		return errors.New(errors.ErrCodeValidation, "registry config requires host, user and database")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("invalid registry port %d", c.Port))
	}
	return nil
}

// Registry serves tribunal holidays from the tribunal_holidays table.
type Registry struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewRegistry opens the connection pool and verifies connectivity.
func NewRegistry(ctx context.Context, cfg Config, logger logging.Logger) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "invalid registry DSN")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "registry pool creation failed")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError,
			fmt.Sprintf("registry ping failed for %s:%d", cfg.Host, cfg.Port))
	}
	logger.Named("registry").Info("connected",
		logging.String("host", cfg.Host),
		logging.String("database", cfg.Database))
	return &Registry{pool: pool, logger: logger.Named("registry")}, nil
}

const fetchHolidaysSQL = `
SELECT holiday_date, name, scope
FROM tribunal_holidays
WHERE tribunal_id = $1
  AND holiday_date >= $2
  AND holiday_date < $3
ORDER BY holiday_date`

// FetchTribunalHolidays returns the registered holidays for one tribunal and
// year.  An empty result is valid; the store treats only errors as a reason
// to degrade.
func (r *Registry) FetchTribunalHolidays(ctx context.Context, tribunalID string, year int) ([]calendar.Holiday, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.pool.Query(ctx, fetchHolidaysSQL, tribunalID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidaySourceUnavailable, "registry query failed").
			WithDetail(fmt.Sprintf("tribunal=%s year=%d", tribunalID, year))
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var (
			date  time.Time
			name  string
			scope string
		)
		if err := rows.Scan(&date, &name, &scope); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeHolidayRegistryParseError, "registry row scan failed")
		}
		holidays = append(holidays, calendar.Holiday{
			Date:  calendar.DateOf(date),
			Name:  name,
			Scope: normalizeScope(scope),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidaySourceUnavailable, "registry row iteration failed")
	}
	return holidays, nil
}

// normalizeScope maps free-form scope values to the calendar taxonomy;
// anything unrecognised is treated as tribunal-level.
func normalizeScope(s string) calendar.HolidayScope {
	switch calendar.HolidayScope(s) {
	case calendar.ScopeNational, calendar.ScopeMovable, calendar.ScopeMunicipal, calendar.ScopeTribunal:
		return calendar.HolidayScope(s)
	default:
		return calendar.ScopeTribunal
	}
}

// Close releases the pool.
func (r *Registry) Close() {
	r.pool.Close()
}

//Personal.AI order the ending
