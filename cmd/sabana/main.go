package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/paulcobox/ar-carga-sabana/internal/config"
	"github.com/paulcobox/ar-carga-sabana/internal/db"
	"github.com/paulcobox/ar-carga-sabana/internal/ingest"
	"github.com/paulcobox/ar-carga-sabana/internal/logging"
	"github.com/paulcobox/ar-carga-sabana/internal/pipeline"
	"github.com/paulcobox/ar-carga-sabana/internal/repository"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	file       string
	sheet      string
	year       int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sabana",
		Short:         "Clean, validate and load the sábana sales export",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", ".", "directory containing config.yaml")
	cmd.Flags().StringVar(&opts.file, "file", "", "path to the sábana export (xlsx or csv)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet name (first sheet when empty)")
	cmd.Flags().IntVar(&opts.year, "year", 0, "target fiscal year (overrides config)")

	cmd.AddCommand(newMigrateCmd(opts))

	return cmd
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if opts.file != "" {
		cfg.Load.File = opts.file
	}
	if opts.sheet != "" {
		cfg.Load.Sheet = opts.sheet
	}
	if opts.year != 0 {
		cfg.Load.TargetYear = opts.year
	}

	log, err := logging.New(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Load.File == "" {
		err := errors.New("no input file configured (set load.file or --file)")
		log.Error(err)
		return err
	}

	log.Infow("loading export file", "file", cfg.Load.File)
	records, err := ingest.ReadFile(cfg.Load.File, cfg.Load.Sheet)
	if err != nil {
		log.Errorw("failed to read export file", "error", err)
		return err
	}
	log.Infow("export file loaded", "rows", len(records))

	log.Info("connecting to the database")
	conn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		log.Errorw("failed to connect to database", "error", err)
		return err
	}
	// Connection released on every exit path, success or failure.
	defer func() {
		conn.Close()
		log.Info("database connection closed")
	}()

	repo := repository.NewSabanaRepository(conn, log)
	p := pipeline.New(cfg.Load.TargetYear, repo, log)

	summary, err := p.Run(ctx, records)
	if err != nil {
		log.Errorw("run aborted", "error", err)
		return err
	}

	log.Infow("run completed",
		"total", summary.Total,
		"current_year", summary.CurrentYear,
		"other_years", summary.OtherYears,
		"rejected", summary.Rejected,
		"modified", summary.Modified,
		"inserted", summary.Loaded,
	)
	return nil
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var (
		down  bool
		steps int
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			m, err := db.NewMigrator(cfg.DB.URL())
			if err != nil {
				return err
			}
			defer m.Close()

			switch {
			case steps != 0:
				err = m.Steps(steps)
			case down:
				err = m.Down()
			default:
				err = m.Up()
			}
			if err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return errors.Wrap(err, "migration failed")
			}

			fmt.Println("migrations applied successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migration steps (positive=up, negative=down)")

	return cmd
}
