package postgres

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
)

// Migrate applies all pending schema migrations for the registry database.
// A database that is already current is not an error.
func Migrate(cfg Config, logger logging.Logger) error {
	if cfg.MigrationsPath == "" {
		return errors.New(errors.ErrCodeValidation, "registry migrations path is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("registry.migrate")

	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DSN())
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "migrator initialization failed")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close failed", logging.Err(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close failed", logging.Err(dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("schema already current")
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "migration failed")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "migration version read failed")
	}
	if dirty {
		return errors.New(errors.ErrCodeDatabaseError,
			fmt.Sprintf("schema is dirty at version %d, manual repair required", version))
	}
	logger.Info("schema migrated", logging.Int64("version", int64(version)))
	return nil
}

//Personal.AI order the ending
