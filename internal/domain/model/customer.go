package model

import "time"

// User represents a registered account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Customer extends a user with contact data used at checkout. A customer's
// order history is a derived query over orders, not a stored back-edge.
type Customer struct {
	ID      int64
	UserID  int64
	Phone   string
	Address string
}
