package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"github.com/tasknest/apiserver/config"
	"github.com/tasknest/apiserver/internal/auth"
	"github.com/tasknest/apiserver/internal/db"
	"github.com/tasknest/apiserver/internal/handlers"
	"github.com/tasknest/apiserver/internal/services"
	"github.com/tasknest/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	logger     *logrus.Logger
}

// New constructs the persisted-variant server: it opens the database,
// ensures the schema, and wires repositories, services, and routes.
func New(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	taskRepo := store.NewTaskRepository(dbConn)

	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo)

	tokens := auth.NewTokenService(jwtSecret, cfg.TokenTTL)
	authMiddleware := handlers.RequireAuth(tokens)

	router := newRouter(cfg)
	router.Get("/", handlers.Root)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, tokens)
	})
	router.Route("/tasks", func(r chi.Router) {
		handlers.TaskRouter(r, taskService, authMiddleware)
	})
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, authMiddleware)
	})

	return &Server{
		httpServer: newHTTPServer(cfg.ServerPort, router),
		router:     router,
		db:         dbConn,
		logger:     logger,
	}, nil
}

// NewDemo constructs the unauthenticated in-memory variant.
func NewDemo(cfg config.Config, logger *logrus.Logger) *Server {
	taskStore := store.NewDemoTaskStore()

	router := newRouter(cfg)
	router.Get("/", handlers.Root)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/tasks", func(r chi.Router) {
		handlers.DemoRouter(r, taskStore)
	})

	return &Server{
		httpServer: newHTTPServer(cfg.ServerPort, router),
		router:     router,
		logger:     logger,
	}
}

func newRouter(cfg config.Config) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	return router
}

func newHTTPServer(port int, router *chi.Mux) *http.Server {
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	if s.logger != nil {
		s.logger.WithField("addr", s.httpServer.Addr).Info("listening")
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
