// Package schedule provides the slot allocation use cases: previewing
// candidate publication times for content across pages, confirming them into
// scheduled items, and managing the items afterwards.
//
// Preview never persists anything; Confirm re-validates every candidate at
// write time so that a slot taken between preview and confirm is detected
// rather than silently double-booked.
package schedule

import "errors"

// Sentinel errors for schedule use case operations.
var (
	// ErrItemNotFound indicates that the requested scheduled item was not found.
	ErrItemNotFound = errors.New("scheduled item not found")

	// ErrInvalidItemID indicates that the provided scheduled item ID is invalid.
	ErrInvalidItemID = errors.New("invalid scheduled item ID")

	// ErrContentNotFound indicates that the content to schedule was not found.
	ErrContentNotFound = errors.New("content not found")

	// ErrPageNotFound indicates that a requested page was not found.
	ErrPageNotFound = errors.New("page not found")

	// ErrPageInactive indicates that a requested page is deactivated and
	// cannot receive new scheduled items.
	ErrPageInactive = errors.New("page is inactive")
)
