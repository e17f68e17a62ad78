package models

// Role is the access level assigned to a user by the backend.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User is a snapshot of the profile as of the last login or dashboard fetch.
// It is not live: fields may be stale until the next fetch.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AdminUser is the richer user row returned by the administrative endpoints,
// including the state of the user's account.
type AdminUser struct {
	User
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
	Suspended     bool    `json:"suspended"`
}
