package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when a record exists but belongs to a
// different owner.
var ErrForbidden = errors.New("forbidden")

// ErrEmailTaken is returned when a user's email is already registered.
var ErrEmailTaken = errors.New("email already registered")
