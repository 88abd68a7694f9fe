// Package server exposes the extractor over an HTTP JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/emurenMRz/emailparser/internal/history"
	"github.com/emurenMRz/emailparser/internal/mailbox"
	"github.com/emurenMRz/emailparser/internal/message"
	"golang.org/x/time/rate"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 5 << 20

// Config configures a Server.
type Config struct {
	// MailboxPath is a directory of mbox files. Empty disables the
	// mailbox routes.
	MailboxPath string

	// History stores parses on request. Nil disables the history routes.
	History history.Store

	// RatePerSecond and Burst bound request throughput across all
	// clients. Zero RatePerSecond means unlimited.
	RatePerSecond float64
	Burst         int

	MaxBodyBytes int64
	Logger       *slog.Logger
}

// Server serves the parse, mailbox and history APIs.
type Server struct {
	mailboxes    *mailbox.Dir
	history      history.Store
	decoder      *message.Decoder
	limiter      *rate.Limiter
	maxBodyBytes int64
	logger       *slog.Logger
	handler      http.Handler
}

// New returns a Server with its routes registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		history:      cfg.History,
		decoder:      message.NewDecoder(),
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MailboxPath != "" {
		s.mailboxes = mailbox.NewDir(cfg.MailboxPath, logger)
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/mailboxes/", s.handleMailboxRoutes)
	mux.HandleFunc("/api/history", s.handleHistoryRoutes)
	mux.HandleFunc("/api/history/", s.handleHistoryRoutes)

	s.handler = s.logRequests(s.limitRate(mux))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
