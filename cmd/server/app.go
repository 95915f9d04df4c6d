package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
	"github.com/phrazzld/forum-api/internal/redact"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/phrazzld/forum-api/internal/service/auth"
	"github.com/phrazzld/forum-api/internal/store"
)

// application holds the shared dependencies of the server and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	userStore       store.UserStore
	maintopicStore  store.MaintopicStore
	discussionStore store.DiscussionStore
	roleStore       store.RoleStore

	jwtService        auth.JWTService
	userService       service.UserService
	maintopicService  service.MaintopicService
	discussionService service.DiscussionService
	roleService       service.RoleService
}

// newApplication wires stores, services and auth around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.maintopicStore = postgres.NewPostgresMaintopicStore(db, logger)
	app.discussionStore = postgres.NewPostgresDiscussionStore(db, logger)
	app.roleStore = postgres.NewPostgresRoleStore(db, logger)

	passwords := auth.NewBcrypt(cfg.Auth.BCryptCost)
	app.userService = service.NewUserService(app.userStore, passwords, passwords, logger)
	app.maintopicService = service.NewMaintopicService(app.maintopicStore, logger)
	app.discussionService = service.NewDiscussionService(app.discussionStore, app.maintopicStore, logger)
	app.roleService = service.NewRoleService(app.roleStore, app.userStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}

func closeDB(db *sqlx.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("error closing database connection", redact.ErrorAttr(err))
	}
}
