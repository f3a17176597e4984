package models

import "time"

// Account is a credentialed identity record. The password hash never
// leaves the service.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
