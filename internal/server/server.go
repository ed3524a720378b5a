package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pavansurya09/StudyMate/config"
	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/internal/handlers"
	"github.com/pavansurya09/StudyMate/internal/services"
	"github.com/pavansurya09/StudyMate/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New constructs a Server with its repositories, services, and routes.
// Repositories are built here once and handed to the services by reference;
// nothing else owns store state.
func New(cfg config.Config, logger zerolog.Logger) (*Server, error) {
	users := store.NewUserRepository(store.DomainRolePolicy(cfg.AdminDomain))
	groups := store.NewStudyGroupRepository()
	events := store.NewEventRepository()

	if cfg.SeedDemo {
		if err := store.SeedDemoData(users, groups, events); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info().Msg("demo data seeded")
	}

	gate := authz.NewGate(nil)
	groupService := services.NewStudyGroupService(groups, gate)
	eventService := services.NewEventService(events, gate)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		requestLogger(logger),
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, users, gate)
	})
	router.Route("/groups", func(r chi.Router) {
		handlers.StudyGroupRouter(r, groupService)
	})
	router.Route("/events", func(r chi.Router) {
		handlers.EventRouter(r, eventService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
	}, nil
}

// Router exposes the chi router for route registration and tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	return s.httpServer.Close()
}
