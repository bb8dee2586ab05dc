package entity

import "time"

// PublishLog records the outcome of a single publish attempt. One row is
// written per attempt, success or failure, so the history of a retried item
// is fully reconstructable.
type PublishLog struct {
	ID              int64
	ScheduledItemID int64
	ContentID       int64
	PageID          int64
	Status          string // "success" or "failed"
	ExternalPostID  string
	ErrorMessage    string
	AttemptedAt     time.Time
}
