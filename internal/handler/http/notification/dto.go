// Package notification provides HTTP handlers for the notification feed.
package notification

import (
	"time"

	"post-scheduler/internal/domain/entity"
)

// DTO represents the JSON structure for notification data transfer.
type DTO struct {
	ID              int64     `json:"id" example:"1"`
	Kind            string    `json:"kind" example:"publish_failed"`
	Title           string    `json:"title" example:"配信に失敗しました"`
	Message         string    `json:"message" example:"ページ「広報」への投稿がリトライ上限に達しました"`
	PageID          *int64    `json:"page_id,omitempty" example:"2"`
	ScheduledItemID *int64    `json:"scheduled_item_id,omitempty" example:"7"`
	Read            bool      `json:"read" example:"false"`
	CreatedAt       time.Time `json:"created_at" example:"2026-01-07T12:00:05Z"`
}

func toDTO(n *entity.Notification) DTO {
	return DTO{
		ID:              n.ID,
		Kind:            n.Kind,
		Title:           n.Title,
		Message:         n.Message,
		PageID:          n.PageID,
		ScheduledItemID: n.ScheduledItemID,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
	}
}
