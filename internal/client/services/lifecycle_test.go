package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline-cli/internal/client/api"
	"github.com/ledgerline/ledgerline-cli/internal/client/events"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
	"github.com/ledgerline/ledgerline-cli/internal/client/session"

	_ "modernc.org/sqlite"
)

// End-to-end wiring of gateway, bus, and session manager against a stub
// backend: the pieces the app composes in production.

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE auth_state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func issueToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		Subject:   "u1",
	}).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return token
}

func TestLifecycle_LoginThenAuthenticatedCall(t *testing.T) {
	token := issueToken(t, time.Hour)
	user := models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: models.RoleCustomer}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "user": user})
		case "/dashboard":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(models.DashboardSnapshot{User: user})
		}
	}))
	t.Cleanup(srv.Close)

	bus := events.NewBus()
	manager := session.NewManager(setupSessionDB(t), bus)
	t.Cleanup(manager.Close)
	gateway := api.NewHTTPClient(srv.URL, 5*time.Second, manager, bus)
	svc := NewAuthService(gateway, manager)
	ctx := context.Background()

	s, err := svc.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, token, s.Token)
	require.Equal(t, models.RoleCustomer, s.Role)

	_, err = gateway.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer "+token, gotAuth)
}

func TestLifecycle_401TearsDownSession(t *testing.T) {
	token := issueToken(t, time.Hour)
	user := models.User{ID: "u1", Role: models.RoleCustomer}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "user": user})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
		}
	}))
	t.Cleanup(srv.Close)

	bus := events.NewBus()
	expired := 0
	bus.Subscribe(func(e events.Event) {
		if e.Kind == events.SessionExpired {
			expired++
		}
	})

	manager := session.NewManager(setupSessionDB(t), bus)
	t.Cleanup(manager.Close)
	gateway := api.NewHTTPClient(srv.URL, 5*time.Second, manager, bus)
	svc := NewAuthService(gateway, manager)
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	_, err = gateway.Dashboard(ctx)
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Equal(t, 1, expired)

	// The manager observed the signal and tore the session down;
	// a later read reports absent without throwing.
	s, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestLifecycle_SuspensionKeepsSession(t *testing.T) {
	token := issueToken(t, time.Hour)
	user := models.User{ID: "u1", Role: models.RoleCustomer}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "user": user})
		case "/dashboard":
			_ = json.NewEncoder(w).Encode(models.DashboardSnapshot{
				User: user,
				Account: &models.Account{
					Suspended:         true,
					SuspensionMessage: "Under review",
				},
			})
		}
	}))
	t.Cleanup(srv.Close)

	bus := events.NewBus()
	var reasons []string
	bus.Subscribe(func(e events.Event) {
		if e.Kind == events.AccountSuspended {
			reasons = append(reasons, e.Reason)
		}
	})

	manager := session.NewManager(setupSessionDB(t), bus)
	t.Cleanup(manager.Close)
	gateway := api.NewHTTPClient(srv.URL, 5*time.Second, manager, bus)
	svc := NewAuthService(gateway, manager)
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	_, err = gateway.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Under review"}, reasons)

	// Still logged in.
	s, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
}
