package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/health-indicators/internal/config"
	"github.com/jwalitptl/health-indicators/internal/indicator"
	"github.com/jwalitptl/health-indicators/internal/repository/postgres"
	"github.com/jwalitptl/health-indicators/internal/service/resident"
	"github.com/jwalitptl/health-indicators/internal/service/seeding"
	"github.com/jwalitptl/health-indicators/pkg/logger"
	"github.com/jwalitptl/health-indicators/pkg/metrics"
)

type app struct {
	configPath    string
	seed          int64
	metricsFile   string
	apply         bool
	linkResidents bool

	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	db      *sqlx.DB
	svc     *seeding.Service
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seeder",
		Short:         "Generate synthetic health indicator INSERT statements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./config.yaml or ./config/config.yaml)")
	flags.Int64Var(&a.seed, "seed", 0, "seed for a reproducible run (0 = time seeded)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	flags.BoolVar(&a.apply, "apply", false, "execute the generated statements against Postgres")
	flags.BoolVar(&a.linkResidents, "link-residents", false, "draw resident ids from public.residents (csv mode)")

	root.AddCommand(newSampleCmd(a), newCSVCmd(a))
	return root
}

func (a *app) setup(ctx context.Context, cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = a.seed
	}
	if a.metricsFile != "" {
		cfg.Metrics.File = a.metricsFile
	}
	a.cfg = cfg

	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     cmd.ErrOrStderr(),
	}).WithFields(map[string]interface{}{"command": cmd.Name()})
	a.metrics = metrics.New("seeder")

	gen := indicator.NewGenerator(
		indicator.WithSeed(cfg.Generator.Seed),
		indicator.WithCSVLookback(cfg.Generator.CSVLookbackDays),
		indicator.WithSampleLookback(cfg.Generator.SampleLookbackDays),
	)
	opts := []seeding.Option{seeding.WithRecordsPerBarangay(cfg.Generator.RecordsPerBarangay)}

	if a.apply || a.linkResidents {
		db, err := postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		a.db = db

		base := postgres.NewBaseRepository(db, a.metrics)
		opts = append(opts, seeding.WithIndicatorRepository(postgres.NewHealthIndicatorRepository(base)))
		if a.linkResidents {
			pool := resident.NewPool(postgres.NewResidentRepository(base), cfg.Cache.ResidentTTL)
			opts = append(opts, seeding.WithResidentSource(pool))
		}
	}

	a.svc = seeding.NewService(gen, a.log, a.metrics, opts...)
	return nil
}

// run wraps a command body so close runs even when the body fails; cobra
// skips post-run hooks after a RunE error.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := fn(cmd)
		return errors.Join(err, a.close())
	}
}

func (a *app) close() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(err, "Failed to close database")
		}
		a.db = nil
	}
	if a.cfg != nil && a.cfg.Metrics.File != "" {
		return a.metrics.WriteToFile(a.cfg.Metrics.File)
	}
	return nil
}

// finish applies the document when requested.
func (a *app) finish(cmd *cobra.Command, doc *seeding.Document) error {
	if !a.apply {
		return nil
	}
	total, err := a.svc.Apply(cmd.Context(), doc)
	if err != nil {
		a.log.Error(err, "Failed to apply statements")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d records (table now holds %d)\n", doc.Statements, total)
	return nil
}
