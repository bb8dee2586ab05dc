package entity

import "time"

// Notification kinds emitted by the dispatcher and administrative operations.
const (
	NotifyPublishSucceeded = "publish_succeeded"
	NotifyPublishFailed    = "publish_failed"
	NotifyPageDeactivated  = "page_deactivated"
)

// Notification is a user-visible event record. Notifications are append-only;
// after creation only the Read flag ever changes.
type Notification struct {
	ID              int64
	Kind            string
	Title           string
	Message         string
	PageID          *int64
	ScheduledItemID *int64
	Read            bool
	CreatedAt       time.Time
}
