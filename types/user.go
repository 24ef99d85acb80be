package types

import "time"

// User represents an account in the system.
// It contains identity, credential, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Email is the user's email address. It is unique across all users.
	Email string `json:"email" db:"email"`

	// FullName is the user's display or full name. It may be empty.
	FullName string `json:"full_name" db:"full_name"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// IsActive indicates whether the account may log in.
	IsActive bool `json:"is_active" db:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Identity is the claims-derived identity of an authenticated caller.
// It is built from a validated token, not from current store state.
type Identity struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UserPatch describes a partial profile update. Only non-nil fields
// are applied.
type UserPatch struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}
