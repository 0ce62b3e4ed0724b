// Package services contains the application services of the dashboard
// client: authentication, the product catalog, and contact messages. Each
// service sits between the REPL and a resource client, owning validation,
// session handling, and the listing caches.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/logging"
	"github.com/rofaidaezzat/fashon-dashboard/internal/validation"
)

// SessionStore is the persistent token store the auth service drives.
// session.Store satisfies it; tests use in-memory fakes.
type SessionStore interface {
	Token(ctx context.Context) (string, bool, error)
	Email(ctx context.Context) (string, bool, error)
	SetSession(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
	ExpiresAt(ctx context.Context) (time.Time, bool)
}

// AuthService owns the login/logout lifecycle of the single staff session.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (string, bool)
	SessionExpiry(ctx context.Context) (time.Time, bool)
}

type authService struct {
	client api.AuthClient
	store  SessionStore
	log    logging.Logger
}

// NewAuthService constructs an AuthService over the given client and store.
func NewAuthService(client api.AuthClient, store SessionStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login validates the credentials form, authenticates against the server,
// and persists the returned bearer token.
func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := validation.Validate(validation.LoginForm{Email: email, Password: password}); err != nil {
		return err
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := a.store.SetSession(ctx, token, email); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Logout clears the local session first and then notifies the server on a
// best-effort basis. The server call failing never fails the logout; the
// local session must always end.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, local session cleared anyway", "error", err)
	}
	return nil
}

// IsAuthenticated reports whether a usable token is stored.
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := a.store.Token(ctx)
	return err == nil && ok
}

// CurrentUser reports the email the stored session was opened with.
func (a *authService) CurrentUser(ctx context.Context) (string, bool) {
	email, ok, err := a.store.Email(ctx)
	if err != nil {
		return "", false
	}
	return email, ok
}

// SessionExpiry reports the stored token's expiry when it is known.
func (a *authService) SessionExpiry(ctx context.Context) (time.Time, bool) {
	return a.store.ExpiresAt(ctx)
}
