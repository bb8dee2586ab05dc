package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates that a conditional update or delete lost a race:
	// the stored state no longer matches what the caller observed
	ErrConflict = errors.New("state conflict")

	// ErrInvalidState indicates that an operation is not allowed for the
	// entity's current lifecycle state
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrNoSlotAvailable indicates that the allocator exhausted its
	// look-ahead window without finding a free candidate time
	ErrNoSlotAvailable = errors.New("no available time slot")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SlotConflictError reports the pages whose previewed candidate time became
// occupied between preview and confirm. The caller decides whether to
// re-preview or confirm again with force.
type SlotConflictError struct {
	PageIDs []int64
}

// Error returns a formatted error message listing the conflicting pages.
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot conflict on pages %v; re-preview or confirm with force", e.PageIDs)
}
