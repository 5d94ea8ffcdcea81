// Package httpapi exposes the server over HTTP: credential flows (signup,
// login, logout), the cookie-based session gate, and the protected journal
// endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avelis/daybook/internal/logging"
	"github.com/avelis/daybook/internal/server/auth"
	"github.com/avelis/daybook/internal/server/models"
	"github.com/avelis/daybook/internal/server/services"
)

// UserAuthenticator is the slice of UserService the HTTP layer needs.
type UserAuthenticator interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// EntryStore is the slice of EntryService the HTTP layer needs.
type EntryStore interface {
	Add(ctx context.Context, userID string, input services.EntryInput) (*models.Entry, error)
	List(ctx context.Context, userID string) ([]*models.Entry, error)
}

// Server wires handlers, middleware, and the listener together.
type Server struct {
	address       string
	logger        logging.Logger
	users         UserAuthenticator
	entries       EntryStore
	codec         *auth.TokenCodec
	secureCookies bool
}

func NewServer(address string, l logging.Logger, users UserAuthenticator, entries EntryStore, codec *auth.TokenCodec, secureCookies bool) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		users:         users,
		entries:       entries,
		codec:         codec,
		secureCookies: secureCookies,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
