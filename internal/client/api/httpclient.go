package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-cli/internal/client/events"
	"github.com/ledgerline/ledgerline-cli/internal/client/models"
)

// HTTPClient is the Gateway implementation over the backend's REST contract.
// Safe for concurrent use; each call carries its own token snapshot and its
// own RequestStarted/RequestEnded pair.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	sessions TokenSource
	bus      *events.Bus
}

func NewHTTPClient(baseURL string, timeout time.Duration, sessions TokenSource, bus *events.Bus) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		bus:      bus,
	}
}

// errorBody is the shape the backend uses for failed calls. The suspension
// fields ride along on any status code; suspension is orthogonal to HTTP
// status.
type errorBody struct {
	Error             string `json:"error"`
	Message           string `json:"message"`
	Suspended         bool   `json:"suspended"`
	SuspensionMessage string `json:"suspensionMessage"`
}

// do is the single choke point for every call: it emits the lifecycle pair,
// attaches the bearer credential, dispatches, and maps the response.
//
// A 401 publishes SessionExpired and returns ErrUnauthorized without retry.
// Transport failures (including timeouts) wrap ErrUnavailable. Other error
// statuses come back as *APIError with the server's message untouched.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, authed bool, body, out any) error {
	c.bus.Publish(events.Event{Kind: events.RequestStarted, Op: op})
	defer c.bus.Publish(events.Event{Kind: events.RequestEnded, Op: op})

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		// Always read through the session manager, never a cached copy.
		// An absent session dispatches unauthenticated (the server answers
		// 401); a read failure is a local fault and fails the call outright.
		s, err := c.sessions.Current(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		if s != nil {
			req.Header.Set("Authorization", "Bearer "+s.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.bus.Publish(events.Event{Kind: events.SessionExpired, Op: op})
		return ErrUnauthorized
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Suspended {
			c.bus.Publish(events.Event{
				Kind:   events.AccountSuspended,
				Op:     op,
				Reason: suspensionReason(eb.SuspensionMessage),
			})
		}
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func suspensionReason(msg string) string {
	if msg == "" {
		return "account suspended"
	}
	return msg
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, "register", http.MethodPost, "/auth/register", false, req, nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.User, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", false, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.DashboardSnapshot, error) {
	var snap models.DashboardSnapshot
	if err := c.do(ctx, "dashboard", http.MethodGet, "/dashboard", true, nil, &snap); err != nil {
		return nil, err
	}
	if snap.Account != nil && snap.Account.Suspended {
		c.bus.Publish(events.Event{
			Kind:   events.AccountSuspended,
			Op:     "dashboard",
			Reason: suspensionReason(snap.Account.SuspensionMessage),
		})
	}
	return &snap, nil
}

type depositRequest struct {
	Amount      float64 `json:"amount"`
	ReferenceID string  `json:"referenceId"`
}

func (c *HTTPClient) Deposit(ctx context.Context, amount float64) (*models.Transaction, error) {
	req := depositRequest{Amount: amount, ReferenceID: uuid.NewString()}
	var tx models.Transaction
	if err := c.do(ctx, "deposit", http.MethodPost, "/dashboard/deposit", true, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

type withdrawRequest struct {
	Amount float64 `json:"amount"`
}

func (c *HTTPClient) Withdraw(ctx context.Context, amount float64) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, "withdraw", http.MethodPost, "/dashboard/withdraw", true, withdrawRequest{Amount: amount}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error) {
	if req.ReferenceID == "" {
		req.ReferenceID = uuid.NewString()
	}
	var tx models.Transaction
	if err := c.do(ctx, "transfer", http.MethodPost, "/dashboard/transfer", true, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.do(ctx, "admin:users:list", http.MethodGet, "/admin/users", true, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := c.do(ctx, "admin:users:create", http.MethodPost, "/admin/users", true, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := c.do(ctx, "admin:users:update", http.MethodPut, "/admin/users/"+url.PathEscape(id), true, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "admin:users:delete", http.MethodDelete, "/admin/users/"+url.PathEscape(id), true, nil, nil)
}

type setRoleRequest struct {
	Role models.Role `json:"role"`
}

func (c *HTTPClient) SetUserRole(ctx context.Context, id string, role models.Role) (*models.AdminUser, error) {
	var user models.AdminUser
	err := c.do(ctx, "admin:users:role", http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/role", true, setRoleRequest{Role: role}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type suspendRequest struct {
	Suspend bool `json:"suspend"`
}

func (c *HTTPClient) SuspendUser(ctx context.Context, id string, suspend bool) (*models.AdminUser, error) {
	var user models.AdminUser
	err := c.do(ctx, "admin:users:suspend", http.MethodPatch, "/admin/users/"+url.PathEscape(id)+"/suspend", true, suspendRequest{Suspend: suspend}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.do(ctx, "admin:transactions:list", http.MethodGet, "/admin/transactions", true, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, req models.AdminTransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, "admin:transactions:create", http.MethodPost, "/admin/transactions", true, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) UpdateTransaction(ctx context.Context, id string, req models.AdminTransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	err := c.do(ctx, "admin:transactions:update", http.MethodPut, "/admin/transactions/"+url.PathEscape(id), true, req, &tx)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

type creditRequest struct {
	AccountNumber string  `json:"accountNumber"`
	Amount        float64 `json:"amount"`
}

type creditResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) CreditAccount(ctx context.Context, accountNumber string, amount float64) (string, error) {
	var resp creditResponse
	err := c.do(ctx, "admin:credit", http.MethodPost, "/admin/credit", true, creditRequest{AccountNumber: accountNumber, Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
