// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hiresight/talentd/internal/config"
	"github.com/hiresight/talentd/internal/db"
	"github.com/hiresight/talentd/internal/matching"
	"github.com/hiresight/talentd/internal/rediscovery"
	"github.com/hiresight/talentd/internal/server/middleware"
	"github.com/hiresight/talentd/internal/types"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (*db.Job, error)
	ListCandidatesByCompany(ctx context.Context, companyID uuid.UUID) ([]types.CandidateProfile, error)
	ReplaceMatches(ctx context.Context, jobID uuid.UUID, results []types.MatchResult) error
	ListMatches(ctx context.Context, jobID uuid.UUID) ([]types.MatchResult, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	database   *db.DB
	engine     *matching.Engine
	jwtService *JWTService
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	Workers        int
	TrendingSkills []string
}

// New creates a new server instance
func New(cfg Config, log *zap.Logger) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	engineOpts := []matching.Option{matching.WithLogger(log)}
	if cfg.Workers > 0 {
		engineOpts = append(engineOpts, matching.WithWorkers(cfg.Workers))
	}
	if len(cfg.TrendingSkills) > 0 {
		detector := rediscovery.New(
			rediscovery.WithTrendingSkills(cfg.TrendingSkills),
			rediscovery.WithLogger(log),
		)
		engineOpts = append(engineOpts, matching.WithDetector(detector))
	}

	s := &Server{
		store:      database,
		database:   database,
		engine:     matching.New(engineOpts...),
		jwtService: NewJWTService(jwtConfig),
		log:        log,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // matching a large pool takes a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. All matching and rediscovery routes require a
// valid bearer token; health stays open for probes.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("POST /matches/compute/{job_id}", auth(http.HandlerFunc(s.handleComputeMatches)))
	mux.Handle("GET /matches/{job_id}/results", auth(http.HandlerFunc(s.handleMatchResults)))
	mux.Handle("POST /match", auth(http.HandlerFunc(s.handleAdHocMatch)))
	mux.Handle("POST /rediscovery/detect", auth(http.HandlerFunc(s.handleDetectSignals)))

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// typedErrorResponse maps a typed error to its HTTP status and writes it.
func (s *Server) typedErrorResponse(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
