// Package fakeapi is an in-process stand-in for the ball-machine user API.
// It serves the same login, logout and dashboard contract so the client and
// the end-to-end suite can run without the real service.
package fakeapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"github.com/Bharathisthe/Testing/internal/config"
	"golang.org/x/time/rate"
)

type Config struct {
	// Users maps username to passcode.
	Users       map[string]string
	TokenSecret string
	TokenTTL    time.Duration
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit int
	RateBurst int
	// HashCost is the bcrypt cost; 0 means bcrypt.DefaultCost.
	HashCost        int
	RevokedCapacity int
	Logger          *slog.Logger
}

// ConfigFrom builds a Config seeded with the runtime config's credentials.
func ConfigFrom(cfg *config.RuntimeConfig) Config {
	return Config{
		Users:       map[string]string{cfg.Username: cfg.Passcode},
		TokenSecret: cfg.TokenSecret,
		TokenTTL:    cfg.TokenTTL,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	}
}

type Server struct {
	users   *userStore
	tokens  *tokenManager
	limiter *rate.Limiter
	metrics *metrics
	log     *slog.Logger
	handler http.Handler
}

func New(cfg Config) (*Server, error) {
	if len(cfg.Users) == 0 {
		return nil, fmt.Errorf("fakeapi: at least one user is required")
	}
	users, err := newUserStore(cfg.Users, cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("fakeapi: %w", err)
	}
	tokens, err := newTokenManager(cfg.TokenSecret, cfg.TokenTTL, cfg.RevokedCapacity)
	if err != nil {
		return nil, fmt.Errorf("fakeapi: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		users:   users,
		tokens:  tokens,
		limiter: newLimiter(cfg.RateLimit, cfg.RateBurst),
		metrics: newMetrics(),
		log:     log,
	}

	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	s.handler = RequestIDMiddleware(s.LoggingMiddleware(s.RateLimitMiddleware(CorsMiddleware(mux))))
	return s, nil
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.HandleHealth)
	mux.Handle("GET /metrics", s.metrics.handler())
	mux.HandleFunc("POST "+types.LoginPath, s.HandleLogin)
	mux.HandleFunc("POST "+types.LogoutPath, s.HandleLogout)
	mux.HandleFunc("GET "+types.DashboardPath, s.HandleDashboard)
}

// Handler returns the fully wrapped handler, ready for http.Server or
// httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.handler
}
