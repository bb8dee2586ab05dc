// Package page provides use cases for managing pages and their account
// assignments. A page may be assigned to many accounts, but exactly one
// assignment per page is primary; the primary account's credential is the
// one dispatch publishes with.
package page

import "errors"

// Sentinel errors for page use case operations.
var (
	// ErrPageNotFound indicates that the requested page was not found.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidPageID indicates that the provided page ID is invalid.
	ErrInvalidPageID = errors.New("invalid page ID")

	// ErrInvalidAccountID indicates that the provided account ID is invalid.
	ErrInvalidAccountID = errors.New("invalid account ID")
)
