package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ledgerline/ledgerline-cli/internal/client/api"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
	"github.com/ledgerline/ledgerline-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for profile fields and creates a new account via the
// AuthService. On success the user still has to log in; the backend does not
// issue a token on registration.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Name: name, Email: email, Password: string(password)}
	if err := a.authService.Register(ctx, req); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
//
// A decodable token is part of a successful login: if the server reports
// success but the issued token is malformed, nothing is persisted and the
// login is reported as failed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			log.Printf("Server unavailable: %s", err.Error())
		case errors.Is(err, session.ErrMalformedCredential):
			log.Printf("Login unsuccessful: server issued an unusable credential")
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful, session valid until %s", current.ExpiresAt.Local().Format("15:04:05"))
	return nil
}

// Logout tears down the local session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.clearSuspended()
	fmt.Println("Logged out.")
	return nil
}
