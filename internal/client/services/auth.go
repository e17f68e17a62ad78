// Package services contains application services for the Ledgerline client.
// This file defines the authentication service: register, login, logout, and
// access to the current session.
package services

import (
	"context"

	"github.com/ledgerline/ledgerline-cli/internal/client/api"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
)

// SessionStore is the slice of the session manager the service needs.
type SessionStore interface {
	Establish(ctx context.Context, token string, user models.User) error
	Current(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the server.
//   - Login: authenticate against the server and establish a local session.
//   - Logout: tear down the local session.
//   - Current: the session if present and unexpired.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type authService struct {
	gateway  api.Gateway
	sessions SessionStore
}

// NewAuthService constructs an AuthService bound to the given gateway and
// session store.
func NewAuthService(gateway api.Gateway, sessions SessionStore) AuthService {
	return &authService{gateway: gateway, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	return a.gateway.Register(ctx, req)
}

// Login authenticates against the server and persists the issued session.
// If the server reports success but the token cannot be decoded, the session
// is not established and the login counts as failed.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	token, user, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Establish(ctx, token, user); err != nil {
		return nil, err
	}

	return a.sessions.Current(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.sessions.Current(ctx)
}
