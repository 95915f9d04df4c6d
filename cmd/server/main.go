// Package main implements the entry point for the forum API server.
// Besides serving HTTP it can run the embedded schema migrations
// (-migrate up|down|reset|status|version) and exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
)

// cliOptions holds the parsed command-line flags.
type cliOptions struct {
	migrate       string
	skipMigration bool
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command (up, down, reset, status, version) and exit")
	fs.BoolVar(&opts.skipMigration, "skip-migrations", false,
		"start the server without applying pending migrations")
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if opts.migrate != "" && !isMigrationCommand(opts.migrate) {
		return cliOptions{}, fmt.Errorf("unknown migration command %q", opts.migrate)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, applies
// migrations and serves HTTP until ctx is canceled.
func run(ctx context.Context, opts cliOptions) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	log.Info("database connection established")

	if opts.migrate != "" {
		defer closeDB(db, log)
		return handleMigrations(ctx, db.DB, opts.migrate, log)
	}
	if !opts.skipMigration {
		if err := handleMigrations(ctx, db.DB, postgres.MigrateUp, log); err != nil {
			closeDB(db, log)
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		closeDB(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// loadAppConfig loads and validates configuration.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Debug("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cors_origins", len(cfg.CORS.AllowedOrigins))
	return cfg, nil
}
