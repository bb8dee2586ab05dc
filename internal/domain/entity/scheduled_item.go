package entity

import "time"

// ScheduledItem lifecycle states. Pending is initial; success and failed are
// terminal (a failed item is only revived by an explicit manual retry, which
// re-enters the pipeline as a fresh pending item).
const (
	ItemPending    = "pending"
	ItemPublishing = "publishing"
	ItemSuccess    = "success"
	ItemFailed     = "failed"
)

// DefaultMaxRetries is the retry budget a ScheduledItem is created with.
const DefaultMaxRetries = 3

// ConflictOverridden is recorded in LastError when a booking was forced into
// an occupied collision window, so overrides stay auditable.
const ConflictOverridden = "conflict-overridden"

// ScheduledItem is a single (content, page, time) delivery intent and its
// lifecycle state. All status changes go through the store's conditional
// Transition; the struct itself carries no behavior beyond machine checks.
type ScheduledItem struct {
	ID             int64
	ContentID      int64
	PageID         int64
	ScheduledTime  time.Time
	Status         string
	RetryCount     int
	MaxRetries     int
	ExternalPostID string
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Active reports whether the item still occupies its page's collision window:
// it is due to run, running, or already delivered.
func (i *ScheduledItem) Active() bool {
	switch i.Status {
	case ItemPending, ItemPublishing, ItemSuccess:
		return true
	}
	return false
}

// CanTransition reports whether the state machine permits moving from the
// item's current status to next.
func CanTransition(current, next string) bool {
	switch current {
	case ItemPending:
		return next == ItemPublishing
	case ItemPublishing:
		return next == ItemSuccess || next == ItemPending || next == ItemFailed
	case ItemFailed:
		// Manual retry only.
		return next == ItemPending
	}
	return false
}

// Validate checks the ScheduledItem invariants enforced at creation time.
// ScheduledTime must be in the future at creation; it is not re-validated
// later (retries legitimately move it around "now").
func (i *ScheduledItem) Validate(now time.Time) error {
	if i.ContentID == 0 {
		return &ValidationError{Field: "content_id", Message: "content_id is required"}
	}
	if i.PageID == 0 {
		return &ValidationError{Field: "page_id", Message: "page_id is required"}
	}
	if !i.ScheduledTime.After(now) {
		return &ValidationError{Field: "scheduled_time", Message: "scheduled_time must be in the future"}
	}
	if i.MaxRetries < 0 {
		return &ValidationError{Field: "max_retries", Message: "max_retries must not be negative"}
	}
	return nil
}
