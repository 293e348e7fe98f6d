// Package api exposes the detection engine over REST.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/plainsight-dev/plainsight/internal/detect"
	"github.com/plainsight-dev/plainsight/internal/logging"
)

// Config configures the REST API server.
type Config struct {
	Addr          string
	Engine        *detect.Engine
	Logger        *logging.AuditLogger
	DefaultTopN   int
	SolverTimeout time.Duration
}

// Server exposes REST endpoints for running detections.
type Server struct {
	cfg        Config
	httpServer *http.Server
	logger     *logging.AuditLogger
}

// NewServer constructs a REST API server using the provided configuration.
func NewServer(cfg Config) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("api address must be provided")
	}
	if cfg.Engine == nil {
		return nil, errors.New("detection engine is required")
	}
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = detect.DefaultTopN
	}
	return &Server{
		cfg:    cfg,
		logger: cfg.Logger,
	}, nil
}

// routes assembles the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/api/v1/detect", http.HandlerFunc(s.handleDetect))
	return mux
}

// Run starts the HTTP server and blocks until the provided context is
// cancelled or a fatal error occurs.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		_ = s.httpServer.Shutdown(shutdownCtx)
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		if s.logger != nil {
			_ = s.logger.Emit(logging.AuditEvent{
				EventType: logging.EventDetectRejected,
				Decision:  logging.DecisionDeny,
				Reason:    err.Error(),
			})
		}
	}
}
