// Package account provides HTTP handlers for publishing-account endpoints.
// It includes handlers for listing, creating, updating and deleting accounts,
// plus listing the pages an account is assigned to.
package account

import (
	"time"

	"post-scheduler/internal/domain/entity"
)

// DTO represents the JSON structure for account data transfer.
type DTO struct {
	ID            int64     `json:"id" example:"1"`
	Name          string    `json:"name" example:"運用チーム A"`
	CredentialRef string    `json:"credential_ref" example:"vault:social/team-a"`
	CreatedAt     time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
}

func toDTO(a *entity.Account) DTO {
	return DTO{
		ID:            a.ID,
		Name:          a.Name,
		CredentialRef: a.CredentialRef,
		CreatedAt:     a.CreatedAt,
	}
}
