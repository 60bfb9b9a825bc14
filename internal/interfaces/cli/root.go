// Package cli wires the engine into the prazo command.  The CLI is a thin
// adapter: flags are parsed, the application services are invoked, results
// are printed.  All computation lives in the domain and application packages.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/juristech/prazo/internal/application/caseflow"
	"github.com/juristech/prazo/internal/config"
	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/domain/deadline"
	"github.com/juristech/prazo/internal/infrastructure/database/redis"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/prometheus"
	"github.com/juristech/prazo/internal/infrastructure/registry/postgres"
)

// app carries the wired components shared by all subcommands.
type app struct {
	cfg        *config.Config
	logger     logging.Logger
	store      *calendar.CalendarStore
	calculator *deadline.Calculator
	service    caseflow.Service
	clock      calendar.Clock

	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp assembles the component graph from the loaded configuration.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, clock: calendar.SystemClock{}}

	var source calendar.HolidaySource
	if cfg.Registry.Enabled {
		reg, err := postgres.NewRegistry(ctx, cfg.Registry, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, reg.Close)
		source = reg
	} else {
		table, err := cfg.Calendar.StaticHolidayTable()
		if err != nil {
			return nil, err
		}
		source = calendar.NewStaticHolidaySource(table)
	}

	// Each app owns its registry; the CLI has no metrics endpoint, and a
	// fresh registry keeps repeated in-process builds from colliding.
	metrics := prometheus.NewEngineMetrics(promclient.NewRegistry())
	storeOpts := []calendar.StoreOption{calendar.WithMetrics(metrics)}
	if cfg.Redis.Enabled {
		cache, err := redis.NewCache(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = cache.Close() })
		storeOpts = append(storeOpts, calendar.WithSharedCache(cache))
	}

	a.store = calendar.NewCalendarStore(calendar.StoreConfig{
		TTL:             cfg.Calendar.TTL,
		FetchTimeout:    cfg.Calendar.FetchTimeout,
		Tribunals:       cfg.Calendar.TribunalIDs(),
		DefaultTribunal: cfg.Calendar.DefaultTribunal,
	}, source, logger, storeOpts...)
	a.calculator = deadline.NewCalculator(a.store, logger)
	a.service = caseflow.NewService(a.calculator, logger, caseflow.WithMetrics(metrics))
	return a, nil
}

// NewRootCmd builds the prazo command tree.
func NewRootCmd(version string) *cobra.Command {
	var (
		cfgPath string
		output  string
		a       *app
	)

	root := &cobra.Command{
		Use:           "prazo",
		Short:         "Legal deadline and calendar engine",
		Long:          "prazo computes statutory procedural deadlines, business-day calendars and per-case deadline matrices for Brazilian tribunals.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			a, err = buildApp(cmd.Context(), cfg)
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a != nil {
				a.close()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the configuration file")
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text or json")

	appRef := func() *app { return a }
	outRef := func() string { return output }

	root.AddCommand(newDeadlineCmd(appRef, outRef))
	root.AddCommand(newCalendarCmd(appRef, outRef))
	root.AddCommand(newMatrixCmd(appRef, outRef))
	root.AddCommand(newChronologyCmd(appRef, outRef))
	root.AddCommand(newMigrateCmd(appRef))
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseAtFlag resolves the --at flag; empty means today per the system clock.
func parseAtFlag(value string, clock calendar.Clock) (calendar.Date, error) {
	if value == "" {
		return calendar.DateOf(clock.Now()), nil
	}
	return calendar.ParseDate(value)
}

// Execute runs the CLI with a background context.
func Execute(version string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return NewRootCmd(version).ExecuteContext(ctx)
}

//Personal.AI order the ending
