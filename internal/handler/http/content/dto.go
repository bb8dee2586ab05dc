// Package content provides HTTP handlers for content endpoints. Content
// edits and deletes are rejected with 409 Conflict once any referencing
// scheduled item has left the pending state.
package content

import (
	"time"

	"post-scheduler/internal/domain/entity"
)

// DTO represents the JSON structure for content data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Body      string    `json:"body" example:"新商品のお知らせです"`
	MediaRefs []string  `json:"media_refs" example:"media/2026/01/cover.jpg"`
	Status    string    `json:"status" example:"draft"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-01-05T12:00:00Z"`
}

func toDTO(c *entity.Content) DTO {
	refs := c.MediaRefs
	if refs == nil {
		refs = []string{}
	}
	return DTO{
		ID:        c.ID,
		Body:      c.Body,
		MediaRefs: refs,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
