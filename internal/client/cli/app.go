package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/ledgerline/ledgerline-cli/internal/client/api"
	"github.com/ledgerline/ledgerline-cli/internal/client/config"
	"github.com/ledgerline/ledgerline-cli/internal/client/events"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
	"github.com/ledgerline/ledgerline-cli/internal/client/services"
	"github.com/ledgerline/ledgerline-cli/internal/client/session"
	"github.com/ledgerline/ledgerline-cli/internal/client/storage"
	"github.com/ledgerline/ledgerline-cli/internal/logging"
)

// App wires the session manager, the request gateway, and the REPL together,
// and hosts the top-level event subscribers: the navigation reaction to
// SessionExpired, the suspension banner, and the in-flight indicator. Those
// concerns live here so the core components stay free of UI and routing.
type App struct {
	config      *config.Config
	log         logging.Logger
	authService services.AuthService
	gateway     api.Gateway
	bus         *events.Bus
	sessions    *session.Manager
	db          *sql.DB
	reader      *bufio.Reader

	inFlight atomic.Int32

	mu            sync.Mutex
	suspendedNote string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	bus := events.NewBus()
	sessions := session.NewManager(db, bus)
	gateway := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sessions, bus)
	as := services.NewAuthService(gateway, sessions)

	a := &App{
		config:      c,
		log:         log,
		authService: as,
		gateway:     gateway,
		bus:         bus,
		sessions:    sessions,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
	}

	bus.Subscribe(a.onEvent)

	return a, nil
}

// onEvent is the top-level observer for lifecycle signals.
func (a *App) onEvent(e events.Event) {
	switch e.Kind {
	case events.RequestStarted:
		a.inFlight.Add(1)
	case events.RequestEnded:
		a.inFlight.Add(-1)
	case events.SessionExpired:
		// The session manager has already torn down; the REPL drops back
		// to the logged-out root on its next prompt.
		fmt.Println("Session expired, please log in again.")
	case events.AccountSuspended:
		a.setSuspended(e.Reason)
	}
}

func (a *App) setSuspended(reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.suspendedNote != reason {
		a.suspendedNote = reason
		fmt.Printf("⚠ %s\n", reason)
	}
}

func (a *App) clearSuspended() {
	a.mu.Lock()
	a.suspendedNote = ""
	a.mu.Unlock()
}

// suspended reports whether the account is flagged and with what message.
// Withdrawals and transfers are refused client-side while suspended;
// deposits and read-only views stay available.
func (a *App) suspended() (bool, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.suspendedNote != "", a.suspendedNote
}

func (a *App) isLoggedIn() bool {
	s, err := a.authService.Current(context.Background())
	return err == nil && s != nil
}

func (a *App) isAdmin() bool {
	s, err := a.authService.Current(context.Background())
	return err == nil && s != nil && s.Role == models.RoleAdmin
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	a.sessions.Close()
	_ = a.db.Close()
}
