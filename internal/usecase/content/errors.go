// Package content provides use cases for managing publishable content.
// Content starts as a draft, becomes scheduled when an item references it,
// and is marked published on its first successful delivery. Edits are only
// accepted while every referencing item is still pending.
package content

import "errors"

// Sentinel errors for content use case operations.
var (
	// ErrContentNotFound indicates that the requested content was not found.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidContentID indicates that the provided content ID is invalid.
	ErrInvalidContentID = errors.New("invalid content ID")

	// ErrContentInUse indicates that the content is referenced by a
	// scheduled item that already left the pending state, so edits and
	// deletes are rejected.
	ErrContentInUse = errors.New("content is referenced by an in-flight or delivered item")
)
