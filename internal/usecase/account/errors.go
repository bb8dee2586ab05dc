// Package account provides use cases for managing publishing accounts.
// Accounts own credential references and are linked to pages through
// assignments; the primary assignment decides which credential a dispatch
// uses.
package account

import "errors"

// Sentinel errors for account use case operations.
var (
	// ErrAccountNotFound indicates that the requested account was not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountID indicates that the provided account ID is invalid.
	// Account IDs must be positive integers.
	ErrInvalidAccountID = errors.New("invalid account ID")
)
