// Package session owns the client's authenticated state: the bearer token,
// the user snapshot, and the expiry-driven auto logout. It is the single
// source of truth for "am I logged in, as whom, until when".
//
// State is persisted locally so a restarted client reconstructs its session
// without a network call. The expiry is always derived from the token itself,
// never from a stored side channel, so a tampered store degrades to "logged
// out" rather than to an inconsistent half-session.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ledgerline/ledgerline-cli/internal/client/events"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
	"github.com/ledgerline/ledgerline-cli/internal/client/repositories/authstate"
	"github.com/ledgerline/ledgerline-cli/internal/dbx"
)

// Persisted field keys.
const (
	keyToken = "token"
	keyUser  = "user"
	keyRole  = "role"
)

// Manager mutates session state through exactly three operations: Establish,
// Current, and Clear. The expiry timer is the only background mutation and is
// confined here.
//
// The manager subscribes to SessionExpired on the bus, so a credential
// rejection observed elsewhere (the gateway's 401) tears the session down the
// same way the timer does.
type Manager struct {
	mu    sync.Mutex
	db    *sql.DB
	bus   *events.Bus
	timer *time.Timer
	unsub func()

	// now is an injection point for tests.
	now func() time.Time
}

func NewManager(db *sql.DB, bus *events.Bus) *Manager {
	m := &Manager{db: db, bus: bus, now: time.Now}
	m.unsub = bus.Subscribe(func(e events.Event) {
		if e.Kind == events.SessionExpired {
			_ = m.Clear(context.Background())
		}
	})
	return m
}

// Establish validates the token, persists the session fields atomically, and
// (re)schedules the auto-logout timer for the token's remaining lifetime.
// Any previously pending timer is cancelled first, so rapid successive calls
// never leak timers.
//
// A token that does not decode, has no expiry claim, or is already expired
// yields ErrMalformedCredential and leaves no partial state behind.
func (m *Manager) Establish(ctx context.Context, token string, user models.User) error {
	expiresAt, err := ParseExpiry(token)
	if err != nil {
		return err
	}

	now := m.now()
	if !expiresAt.After(now) {
		return fmt.Errorf("%w: token expired at %s", ErrMalformedCredential, expiresAt.Format(time.RFC3339))
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := authstate.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUser, rawUser); err != nil {
			return err
		}
		return repo.Set(ctx, keyRole, []byte(user.Role))
	})
	if err != nil {
		return err
	}

	m.stopTimerLocked()
	m.timer = time.AfterFunc(expiresAt.Sub(now), func() {
		m.bus.Publish(events.Event{Kind: events.SessionExpired})
	})

	return nil
}

// Current returns the session if one is present and unexpired, or nil.
//
// The expiry check here is what guards against timers that never fired
// (process stopped, machine asleep past expiry): an expired or partially
// persisted session is torn down as a side effect and reported absent.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := authstate.NewSQLiteRepository(m.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	if len(token) == 0 && len(rawUser) == 0 {
		return nil, nil
	}
	if len(token) == 0 || len(rawUser) == 0 {
		// Partial state is not a valid session.
		return nil, m.teardownLocked(ctx)
	}

	expiresAt, err := ParseExpiry(string(token))
	if err != nil {
		return nil, m.teardownLocked(ctx)
	}
	if !expiresAt.After(m.now()) {
		return nil, m.teardownLocked(ctx)
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, m.teardownLocked(ctx)
	}

	return &models.Session{
		Token:     string(token),
		User:      user,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Clear cancels any pending timer and removes all persisted fields.
// Safe to call when no session exists.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teardownLocked(ctx)
}

// Close detaches the manager from the bus and stops the timer. The persisted
// session is left untouched for the next run.
func (m *Manager) Close() {
	if m.unsub != nil {
		m.unsub()
	}
	m.mu.Lock()
	m.stopTimerLocked()
	m.mu.Unlock()
}

func (m *Manager) teardownLocked(ctx context.Context) error {
	m.stopTimerLocked()
	return authstate.NewSQLiteRepository(m.db).Clear(ctx)
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
