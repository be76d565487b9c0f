// Package httpserver provides the gracefully stoppable HTTP server of the standalone binary.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/butterflysteps/backend/internal/logging"
	"go.opencensus.io/plugin/ochttp"
)

const shutdownTimeout = 5 * time.Second

// Config holds server config
type Config struct {
	Port string
}

// Server provides a gracefully-stoppable http server implementation. It is safe
// for concurrent use in goroutines.
type Server struct {
	ip       string
	port     string
	listener net.Listener
}

// NewServer creates the HTTP server
func NewServer(ctx context.Context, config *Config) (*Server, error) {
	logger := logging.FromContext(ctx)

	// Create the net listener first, so the connection ready when we return. This
	// guarantees that it can accept requests.
	addr := ":" + config.Port
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on %s: %w", addr, err)
	}

	s := &Server{
		ip:       listener.Addr().(*net.TCPAddr).IP.String(),
		port:     strconv.Itoa(listener.Addr().(*net.TCPAddr).Port),
		listener: listener,
	}
	logger.Debugf("Listening on %v", s.Addr())
	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return net.JoinHostPort(s.ip, s.port)
}

// Port returns the port the server listens on
func (s *Server) Port() string {
	return s.port
}

// ServeHTTPHandler serves with the http handler
func (s *Server) ServeHTTPHandler(ctx context.Context, handler http.Handler) error {
	return s.ServeHTTP(ctx, &http.Server{
		Handler: &ochttp.Handler{
			Handler: handler,
		},
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	})
}

// ServeHTTP runs srv until ctx is closed.
func (s *Server) ServeHTTP(ctx context.Context, srv *http.Server) error {
	logger := logging.FromContext(ctx)

	// Spawn a goroutine that listens for context closure. When the context is
	// closed, the server is stopped.
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()

		logger.Debugf("server.Serve: context closed")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		logger.Debugf("server.Serve: shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
	}()

	// Run the server. This will block until the provided context is closed.
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	logger.Debugf("server.Serve: serving stopped")

	// Return any errors that happened during shutdown.
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to shutdown: %w", err)
	default:
		return nil
	}
}
