// Package server exposes the generation pipeline over HTTP: a generate
// endpoint, a bundle download endpoint and a health probe. Everything
// else about presentation lives outside this repository; the handlers
// only call into the pipeline's contract and render its results.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
	"github.com/silaspuma/rogen/pkg/session"
	"github.com/silaspuma/rogen/pkg/store"
	"github.com/silaspuma/rogen/pkg/usecase/generate"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Config contains what the API server needs.
type Config struct {
	Logger       *slog.Logger
	Orchestrator *generate.UseCase  // Required
	Session      *session.Session   // Optional: nil means all requests are anonymous
	Gateway      repository.Gateway // Optional: with Session, enables the auth endpoints
	Policy       model.Policy       // Zero value falls back to defaults
	Cache        *store.Store       // Optional: created when nil
	GenTimeout   time.Duration      // Per-request budget for generation (0 = 120s)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a server with all routes configured.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Orchestrator == nil {
		return nil, errors.New("orchestrator is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cache := cfg.Cache
	if cache == nil {
		cache = store.New()
	}

	timeout := cfg.GenTimeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	policy := cfg.Policy
	if policy == (model.Policy{}) {
		policy = model.DefaultPolicy()
	}

	gh := &generateHandler{
		logger:       logger,
		orchestrator: cfg.Orchestrator,
		session:      cfg.Session,
		cache:        cache,
		timeout:      timeout,
	}
	dh := &downloadHandler{
		logger: logger,
		cache:  cache,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/generate", gh.generate)
	mux.HandleFunc("/api/v1/download", dh.download)
	mux.HandleFunc("/api/v1/download/{id}", dh.download)
	mux.HandleFunc("/api/v1/health", health)

	if cfg.Session != nil {
		cfg.Session.Subscribe(func(user *model.User) {
			if user != nil {
				logger.Info("user signed in", "email", user.Email)
			} else {
				logger.Info("user signed out")
			}
		})
	}

	if cfg.Session != nil && cfg.Gateway != nil {
		ah := &authHandler{
			logger:  logger,
			gateway: cfg.Gateway,
			session: cfg.Session,
			policy:  policy,
		}
		mux.HandleFunc("/api/v1/auth/signup", ah.signup)
		mux.HandleFunc("/api/v1/auth/signin", ah.signin)
		mux.HandleFunc("/api/v1/auth/signout", ah.signout)
	}

	return &Server{mux: mux}, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
