package models

import "time"

// Transaction is a posted ledger entry as echoed back by the backend.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	ReferenceID string    `json:"referenceId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardSnapshot is the aggregate state the dashboard endpoint returns.
// Account may be nil for a user whose account has not been provisioned yet.
type DashboardSnapshot struct {
	User         User          `json:"user"`
	Account      *Account      `json:"account"`
	Transactions []Transaction `json:"transactions"`
}
