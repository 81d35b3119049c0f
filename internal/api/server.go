package api

import (
	"log/slog"
	"net/http"

	"github.com/dmaslov/probank/internal/auth"
	"github.com/dmaslov/probank/internal/config"
	"github.com/dmaslov/probank/internal/problem"
	"github.com/dmaslov/probank/internal/progress"
	"github.com/dmaslov/probank/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for the problem bank.
type Server struct {
	router   chi.Router
	bank     []problem.Problem
	byID     map[string]*problem.Problem
	renderer *render.Renderer
	progress *progress.Store
	gate     *auth.Gate
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. The bank is read-only
// after construction; rendering happens per request.
func NewServer(bank []problem.Problem, renderer *render.Renderer, prog *progress.Store, gate *auth.Gate, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		bank:     bank,
		byID:     make(map[string]*problem.Problem, len(bank)),
		renderer: renderer,
		progress: prog,
		gate:     gate,
		log:      log,
		cfg:      cfg,
	}
	for i := range bank {
		s.byID[bank[i].ID] = &bank[i]
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(RateLimiter(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Post("/api/login", s.handleLogin)

	// Session-gated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(s.gate))

		r.Get("/api/problems", s.handleListProblems)
		r.Get("/api/problems/{problemID}", s.handleGetProblem)

		r.Put("/api/problems/{problemID}/solved", s.handleSetSolved(true))
		r.Delete("/api/problems/{problemID}/solved", s.handleSetSolved(false))
		r.Put("/api/problems/{problemID}/bookmark", s.handleSetBookmarked(true))
		r.Delete("/api/problems/{problemID}/bookmark", s.handleSetBookmarked(false))

		r.Get("/api/progress", s.handleProgress)
		r.Post("/api/logout", s.handleLogout)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
