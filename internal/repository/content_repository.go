package repository

import (
	"context"

	"post-scheduler/internal/domain/entity"
)

type ContentRepository interface {
	Get(ctx context.Context, id int64) (*entity.Content, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Content, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, content *entity.Content) error
	Update(ctx context.Context, content *entity.Content) error
	// SetStatus moves the content between draft/scheduled/published.
	SetStatus(ctx context.Context, id int64, status string) error
	// MarkPublished flips the content to published once; subsequent calls
	// report false so the caller can detect the first successful delivery.
	MarkPublished(ctx context.Context, id int64) (first bool, err error)
	Delete(ctx context.Context, id int64) error
}
