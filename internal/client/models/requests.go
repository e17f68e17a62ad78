package models

// Transfer types accepted by the backend.
const (
	TransferLocal = "LOCAL"
	TransferIntl  = "INTL"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TransferRequest carries the recipient fields for both transfer types.
// LOCAL transfers use RecipientEmail/AccountNumber/BankName, INTL transfers
// use RecipientName/IBAN/SwiftCode/BankName; unused fields are omitted.
type TransferRequest struct {
	Amount         float64 `json:"amount"`
	TransferType   string  `json:"transferType"`
	RecipientEmail string  `json:"recipientEmail,omitempty"`
	AccountNumber  string  `json:"accountNumber,omitempty"`
	BankName       string  `json:"bankName,omitempty"`
	RecipientName  string  `json:"recipientName,omitempty"`
	IBAN           string  `json:"iban,omitempty"`
	SwiftCode      string  `json:"swiftCode,omitempty"`
	ReferenceID    string  `json:"referenceId,omitempty"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AdminTransactionRequest is the payload for administrative transaction
// create/update calls.
type AdminTransactionRequest struct {
	AccountNumber string  `json:"accountNumber,omitempty"`
	Type          string  `json:"type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Status        string  `json:"status,omitempty"`
}
