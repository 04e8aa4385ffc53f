package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"
)

// Default timing for Serve.
const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// ServerConfig configures Listen and Serve.
type ServerConfig struct {
	// Addr is the TCP address to listen on, e.g. ":8443". Required.
	Addr string

	// MaxConnections caps the number of simultaneously accepted
	// connections. Zero means no cap.
	MaxConnections int

	// ShutdownTimeout bounds graceful shutdown after the serve context
	// is cancelled. Defaults to 10 seconds.
	ShutdownTimeout time.Duration
}

// Listen opens a TCP listener on cfg.Addr. When cfg.MaxConnections is
// positive the listener is wrapped so that at most that many
// connections are accepted at once; further clients queue in the
// kernel backlog.
func Listen(cfg ServerConfig) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	return ln, nil
}

// Serve runs an HTTP server for handler on ln until ctx is cancelled,
// then shuts down gracefully within cfg.ShutdownTimeout. It returns
// nil after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig) error {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)

		// Drain the serve goroutine; it returns ErrServerClosed after
		// Shutdown.
		<-errc

		return err
	}
}
