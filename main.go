// Entry point of the sitecms application. It initializes configuration,
// the database pool and migrations, wires services and handlers together
// through constructor injection, sets up the HTTP router and middleware,
// and runs the server with graceful shutdown.
//
// @title sitecms API
// @version 1.0
// @description Content API for the business website: blogs, events, services and settings.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/sitecms-go/apperror"
	"github.com/user/sitecms-go/auth"
	"github.com/user/sitecms-go/blog"
	"github.com/user/sitecms-go/config"
	"github.com/user/sitecms-go/db"
	_ "github.com/user/sitecms-go/docs" // generated Swagger docs
	"github.com/user/sitecms-go/events"
	"github.com/user/sitecms-go/services"
	"github.com/user/sitecms-go/settings"
)

// healthResponse is the liveness probe payload.
type healthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

func main() {
	// .env is a development convenience; production sets real environment
	// variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	debug := !cfg.Server.IsProduction()

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services and handlers. Dependencies are injected explicitly at
	// construction time; there are no package-level singletons.
	tokenService := auth.NewTokenService(*cfg.Auth)
	adminStore := auth.NewPgAdminStore(pool)
	authService := auth.NewAuthService(adminStore, tokenService)
	authHandlers := auth.NewHandlers(authService, debug)

	blogHandler := blog.NewHandler(blog.NewBlogService(pool), debug)
	eventsHandler := events.NewHandler(events.NewEventService(pool), debug)
	servicesHandler := services.NewHandler(services.NewCatalogService(pool), debug)
	settingsHandler := settings.NewHandler(settings.NewSettingsService(pool), debug)

	// The access guard: the sole authentication gate, applied to every
	// mutating route group below and nowhere re-checked.
	guard := auth.Middleware(tokenService, debug)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered before
	// any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Outermost safety net: panics become apperror 500 JSON instead of a
	// bare connection reset.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					apperror.WriteError(ww, apperror.NewInternalError("internal server error", nil), debug)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes are public: setup gates itself on the admin count and
	// login is how a token is obtained in the first place.
	r.Route("/auth", func(r chi.Router) {
		r.Get("/check-setup", authHandlers.HandleCheckSetup())
		r.Post("/setup", authHandlers.HandleSetup())
		r.Post("/login", authHandlers.HandleLogin())
	})

	// Each entity mounts its public reads openly and its mutations behind
	// the guard on the same path prefix.
	r.Route("/blogs", func(r chi.Router) {
		blogHandler.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			blogHandler.RegisterAdminRoutes(r)
		})
	})
	r.Route("/events", func(r chi.Router) {
		eventsHandler.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			eventsHandler.RegisterAdminRoutes(r)
		})
	})
	r.Route("/services", func(r chi.Router) {
		servicesHandler.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			servicesHandler.RegisterAdminRoutes(r)
		})
	})
	r.Route("/settings", func(r chi.Router) {
		settingsHandler.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			settingsHandler.RegisterAdminRoutes(r)
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
