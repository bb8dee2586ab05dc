// Package schedule provides HTTP handlers for the scheduling workflow:
// slot preview, confirmation, scheduled item management, manual retry and
// per-attempt publish history.
package schedule

import (
	"time"

	"post-scheduler/internal/domain/entity"
)

// DTO represents the JSON structure for scheduled item data transfer.
type DTO struct {
	ID             int64     `json:"id" example:"1"`
	ContentID      int64     `json:"content_id" example:"1"`
	PageID         int64     `json:"page_id" example:"2"`
	ScheduledTime  time.Time `json:"scheduled_time" example:"2026-01-07T12:00:00Z"`
	Status         string    `json:"status" example:"pending"`
	RetryCount     int       `json:"retry_count" example:"0"`
	MaxRetries     int       `json:"max_retries" example:"3"`
	ExternalPostID string    `json:"external_post_id,omitempty" example:"1234567890_111"`
	LastError      string    `json:"last_error,omitempty" example:"rate limited"`
	CreatedAt      time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2026-01-05T12:00:00Z"`
}

// CandidateDTO represents one previewed or requested allocation. Conflict
// is true when the candidate was advanced past an occupied slot.
type CandidateDTO struct {
	PageID        int64     `json:"page_id" example:"2"`
	ScheduledTime time.Time `json:"scheduled_time" example:"2026-01-07T12:00:00Z"`
	Conflict      bool      `json:"conflict" example:"false"`
}

// LogDTO represents one publish attempt in an item's history.
type LogDTO struct {
	ID             int64     `json:"id" example:"1"`
	Status         string    `json:"status" example:"failed"`
	ExternalPostID string    `json:"external_post_id,omitempty" example:"1234567890_111"`
	ErrorMessage   string    `json:"error_message,omitempty" example:"rate limited"`
	AttemptedAt    time.Time `json:"attempted_at" example:"2026-01-07T12:00:05Z"`
}

func toDTO(item *entity.ScheduledItem) DTO {
	return DTO{
		ID:             item.ID,
		ContentID:      item.ContentID,
		PageID:         item.PageID,
		ScheduledTime:  item.ScheduledTime,
		Status:         item.Status,
		RetryCount:     item.RetryCount,
		MaxRetries:     item.MaxRetries,
		ExternalPostID: item.ExternalPostID,
		LastError:      item.LastError,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func toLogDTO(l *entity.PublishLog) LogDTO {
	return LogDTO{
		ID:             l.ID,
		Status:         l.Status,
		ExternalPostID: l.ExternalPostID,
		ErrorMessage:   l.ErrorMessage,
		AttemptedAt:    l.AttemptedAt,
	}
}
