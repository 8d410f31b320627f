package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"recipehub/database"
	"recipehub/internal/config"
	httpapi "recipehub/internal/microservices/http-api"
	"recipehub/internal/observability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "api-server",
		Usage:   "RecipeHub HTTP API",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
		},
		DefaultCommand: "serve",
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply pending database migrations before serving",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := database.ConnectDB(ctx, cfg, logger)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}
			defer sqlDB.Close()

			if cmd.Bool("migrate") {
				if err := database.RunMigrations(ctx, sqlDB, logger); err != nil {
					return err
				}
			}

			rdb, err := database.ConnectRedis(ctx, cfg, logger)
			if err != nil {
				return err
			}
			if rdb != nil {
				defer rdb.Close()
			}

			var metrics *observability.Metrics
			if cfg.PrometheusEnabled {
				metrics = observability.NewMetrics(prometheus.NewRegistry())
				metrics.RegisterDBStats(sqlDB, "recipehub")
			}

			router, err := httpapi.NewRouter(httpapi.Deps{
				Config:  cfg,
				DB:      db,
				Redis:   rdb,
				Metrics: metrics,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			return httpapi.NewServer(cfg, router, logger).Run(ctx)
		},
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := database.ConnectDB(ctx, cfg, logger)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}
			defer sqlDB.Close()

			return database.RunMigrations(ctx, sqlDB, logger)
		},
	}
}

// setup loads and validates configuration and installs the process logger
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := observability.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	logger.Info("starting", "version", version, "commit", commit, "env", cfg.GoEnv)

	return cfg, logger, nil
}
