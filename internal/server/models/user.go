package models

import "time"

// User is a credential record. PasswordHash is an opaque bcrypt string;
// the plaintext never leaves the signup/login handlers.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
