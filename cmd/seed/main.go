// Package main implements the development seeding command. It creates the
// "admin" and "user" roles and an administrator account taken from the
// seed section of the configuration. Running it twice changes nothing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateSeed(cfg.Seed); err != nil {
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
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", "error", err)
		}
	}()

	hasher := auth.NewBcrypt(cfg.Auth.BCryptCost)
	err = store.RunInTransaction(logger.WithTraceID(ctx, log, "seed"), db,
		func(ctx context.Context, tx *sqlx.Tx) error {
			s := newSeeder(
				postgres.NewPostgresRoleStore(tx, log),
				postgres.NewPostgresUserStore(tx, log),
				hasher,
				log,
			)
			return s.Seed(ctx, cfg.Seed)
		})
	if err != nil {
		return err
	}

	log.Info("seeding completed")
	return nil
}
