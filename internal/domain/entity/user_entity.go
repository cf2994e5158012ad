package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID          string
	Email       string
	Password    string
	FullName    string
	Age         int
	Address     Address
	PhoneNumber string
	CreatedAt   time.Time
}

type Address struct {
	Country    string
	State      string
	Street     string
	PostalCode string
}
