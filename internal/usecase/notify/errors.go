// Package notify provides use cases for emitting and managing user-visible
// notifications. Notifications are append-only records written on publish
// success, terminal failure and page deactivation; after creation only the
// read flag ever changes.
package notify

import "errors"

// Sentinel errors for notification use case operations.
var (
	// ErrNotificationNotFound indicates that the requested notification was not found.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidNotificationID indicates that the provided notification ID is invalid.
	ErrInvalidNotificationID = errors.New("invalid notification ID")
)
