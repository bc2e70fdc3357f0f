package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"form-palette/internal/config"
	"form-palette/internal/ui"
)

// pruneInterval controls how often idle rate limit buckets are dropped
const pruneInterval = time.Minute

// Server runs the palette HTTP API and, if configured, the metrics listener.
type Server struct {
	Config  *config.Config
	limiter *RateLimiter
	http    *http.Server
	metrics *MetricsServer

	mu sync.Mutex
	ln net.Listener
}

// NewServer creates a new palette server with the given configuration.
func NewServer(cfg *config.Config) *Server {
	limiter := NewRateLimiter(cfg.RateLimitRPM)
	s := &Server{
		Config:  cfg,
		limiter: limiter,
		http: &http.Server{
			Handler:           NewHandler(cfg.DefaultFormat(), limiter, WithTrustedProxyHeaders(cfg.TrustProxyHeaders)),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	if cfg.MetricsListen != "" {
		s.metrics = NewMetricsServer(cfg.MetricsListen)
	}
	return s
}

// Addr returns the bound API address, or nil before Start has listened
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Start begins accepting connections. It blocks until shutdown or error.
// The context is used for graceful shutdown - cancel it to initiate shutdown.
// The metrics listener and background pruning stop on every return path.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Listen)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui.LogStatus("success", "Palette API: http://"+ln.Addr().String()+"/palette")
	if s.metrics != nil {
		s.metrics.Start()
		ui.LogStatus("info", "Metrics: http://"+s.Config.MetricsListen+"/metrics")
	}

	go s.pruneLoop(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		s.shutdownMetrics(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	ui.LogGracefulShutdown()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	s.shutdownMetrics(shutdownCtx)
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	ui.LogStatus("success", "Server stopped")
	return nil
}

func (s *Server) shutdownMetrics(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.Shutdown(ctx); err != nil {
		ui.LogStatus("warning", "Metrics shutdown: "+err.Error())
	}
}

func (s *Server) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.limiter.Prune(); n > 0 {
				ui.LogStatus("debug", "Pruned idle rate limit buckets: "+strconv.Itoa(n))
			}
		}
	}
}
