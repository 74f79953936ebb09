// Package service implements the business logic between handlers and
// repositories.
package service

import "errors"

var (
	// ErrUserExists means an account with the email already exists.
	ErrUserExists = errors.New("account already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every token failure: malformed, expired, bad
	// signature, or a subject that no longer resolves to a user.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the request clashes with existing state, for
	// example a duplicate VIN or deleting a user that still has orders.
	ErrConflict = errors.New("conflicting state")
)
