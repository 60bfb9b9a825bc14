package cli

import (
	"github.com/spf13/cobra"

	"github.com/juristech/prazo/internal/infrastructure/registry/postgres"
	"github.com/juristech/prazo/pkg/errors"
)

func newMigrateCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the holiday registry schema migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			a := appRef()
			if !a.cfg.Registry.Enabled {
				return errors.New(errors.ErrCodeValidation, "registry is disabled in the configuration")
			}
			return postgres.Migrate(a.cfg.Registry, a.logger)
		},
	}
}

//Personal.AI order the ending
