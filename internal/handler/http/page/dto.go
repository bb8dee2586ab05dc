// Package page provides HTTP handlers for page endpoints: CRUD, activation
// state, account assignments and recurring time slots.
package page

import (
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// DTO represents the JSON structure for page data transfer.
type DTO struct {
	ID         int64     `json:"id" example:"1"`
	ExternalID string    `json:"external_id" example:"1234567890"`
	Name       string    `json:"name" example:"広報ページ"`
	Active     bool      `json:"active" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
}

// AssignmentDTO represents the JSON structure for a page/account assignment.
type AssignmentDTO struct {
	AccountID   int64     `json:"account_id" example:"3"`
	AccountName string    `json:"account_name" example:"運用チーム A"`
	IsPrimary   bool      `json:"is_primary" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
}

// TimeSlotDTO represents the JSON structure for a recurring time slot.
type TimeSlotDTO struct {
	ID        int64  `json:"id" example:"1"`
	PageID    int64  `json:"page_id" example:"1"`
	DayOfWeek int    `json:"day_of_week" example:"3"`
	TimeOfDay string `json:"time_of_day" example:"12:00"`
	Recurring bool   `json:"recurring" example:"true"`
}

func toDTO(p *entity.Page) DTO {
	return DTO{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		Name:       p.Name,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
	}
}

func toAssignmentDTO(a repository.AssignmentWithAccount) AssignmentDTO {
	return AssignmentDTO{
		AccountID:   a.Assignment.AccountID,
		AccountName: a.AccountName,
		IsPrimary:   a.Assignment.IsPrimary,
		CreatedAt:   a.Assignment.CreatedAt,
	}
}

func toTimeSlotDTO(s *entity.TimeSlot) TimeSlotDTO {
	return TimeSlotDTO{
		ID:        s.ID,
		PageID:    s.PageID,
		DayOfWeek: s.DayOfWeek,
		TimeOfDay: s.TimeOfDay,
		Recurring: s.Recurring,
	}
}
