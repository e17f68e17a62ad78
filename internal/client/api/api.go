package api

import (
	"context"

	"github.com/ledgerline/ledgerline-cli/internal/client/models"
)

// Gateway is the typed surface of the banking backend. Implementations own
// transport, credential injection, and lifecycle signaling; nothing else in
// the client touches HTTP directly.
type Gateway interface {
	// Unauthenticated calls. No bearer token is ever attached.
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (string, models.User, error)

	// Customer calls.
	Dashboard(ctx context.Context) (*models.DashboardSnapshot, error)
	Deposit(ctx context.Context, amount float64) (*models.Transaction, error)
	Withdraw(ctx context.Context, amount float64) (*models.Transaction, error)
	Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error)

	// Administrative calls.
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.AdminUser, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserRole(ctx context.Context, id string, role models.Role) (*models.AdminUser, error)
	SuspendUser(ctx context.Context, id string, suspend bool) (*models.AdminUser, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.AdminTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.AdminTransactionRequest) (*models.Transaction, error)
	CreditAccount(ctx context.Context, accountNumber string, amount float64) (string, error)
}

// TokenSource yields the current session, if any. The gateway reads it on
// every call rather than caching a token, so teardown elsewhere takes effect
// immediately.
type TokenSource interface {
	Current(ctx context.Context) (*models.Session, error)
}
