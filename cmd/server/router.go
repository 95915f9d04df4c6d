package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/forum-api/internal/api"
	apiMiddleware "github.com/phrazzld/forum-api/internal/api/middleware"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	if app.config.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(app.config.Server.RequestTimeout))
	}
	if origins := app.config.CORS.AllowedOrigins; len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{apiMiddleware.TraceIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, &app.config.Auth, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	maintopicHandler := api.NewMaintopicHandler(app.maintopicService, app.logger)
	discussionHandler := api.NewDiscussionHandler(app.discussionService, app.logger)
	roleHandler := api.NewRoleHandler(app.roleService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.logger)

	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	healthHandler := api.NewHealthHandler(pinger, app.logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found",
			shared.WithErrorType(domain.KindNotFound.String()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed",
			shared.WithErrorType("method_not_allowed"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Get("/maintopics", maintopicHandler.ListMaintopics)
		r.Get("/maintopics/{id}", maintopicHandler.GetMaintopic)
		r.Get("/maintopics/{id}/discussions", discussionHandler.ListMaintopicDiscussions)
		r.Get("/discussions", discussionHandler.ListDiscussions)
		r.Get("/discussions/{id}", discussionHandler.GetDiscussion)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", userHandler.Me)

			r.Post("/maintopics", maintopicHandler.CreateMaintopic)
			r.Put("/maintopics/{id}", maintopicHandler.UpdateMaintopic)
			r.Delete("/maintopics/{id}", maintopicHandler.DeleteMaintopic)
			r.Post("/maintopics/{id}/close", maintopicHandler.CloseMaintopic)
			r.Post("/maintopics/{id}/discussions", discussionHandler.CreateDiscussion)

			// Admin endpoints
			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireRole(domain.RoleTypeAdmin))

				r.Get("/roles", roleHandler.ListRoles)
				r.Post("/roles", roleHandler.CreateRole)
				r.Put("/users/{id}/roles/{name}", roleHandler.AssignRole)
			})
		})
	})

	r.Get("/health", healthHandler.Health)

	return r
}
