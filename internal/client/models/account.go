package models

// Account is the customer's account as reported by the dashboard endpoint.
// Suspended is a business condition, not a credential failure: a suspended
// account is still logged in.
type Account struct {
	ID                string  `json:"id"`
	AccountNumber     string  `json:"accountNumber"`
	Balance           float64 `json:"balance"`
	Suspended         bool    `json:"suspended"`
	SuspensionMessage string  `json:"suspensionMessage,omitempty"`
}
