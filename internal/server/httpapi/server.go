// Package httpapi exposes the server's HTTP surface: registration, login,
// profile, and the owner-scoped task/quest resources. Every protected route
// goes through the bearer-token middleware before it can reach a service.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/irlquest/server/internal/logging"
	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/quests"
	"github.com/irlquest/server/internal/server/tasks"
)

type Server struct {
	address    string
	logger     logging.Logger
	identities *identities.Service
	tasks      *tasks.Service
	quests     *quests.Service
	jwtSecret  []byte
}

func NewServer(address string, l logging.Logger, is *identities.Service, ts *tasks.Service, qs *quests.Service, secretKey string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "httpapi"),
		identities: is,
		tasks:      ts,
		quests:     qs,
		jwtSecret:  []byte(secretKey),
	}
}

// Routes builds the router. Protected resources live in a group behind the
// bearer-token middleware; auth endpoints stay outside it.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/token", s.handleToken)

		r.Group(func(r chi.Router) {
			r.Use(s.withIdentity)

			r.Get("/auth/me", s.handleMe)
			r.Get("/users/me", s.handleMe)
			r.Put("/users/me", s.handleUpdateMe)

			r.Get("/tasks/", s.handleListTasks)
			r.Post("/tasks/", s.handleCreateTask)
			r.Get("/tasks/{id}", s.handleGetTask)
			r.Put("/tasks/{id}", s.handleUpdateTask)
			r.Delete("/tasks/{id}", s.handleDeleteTask)

			r.Get("/quests/", s.handleListQuests)
			r.Post("/quests/", s.handleCreateQuest)
			r.Get("/quests/{id}", s.handleGetQuest)
			r.Put("/quests/{id}", s.handleUpdateQuest)
			r.Delete("/quests/{id}", s.handleDeleteQuest)
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
