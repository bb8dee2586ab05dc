package repository

import (
	"context"

	"post-scheduler/internal/domain/entity"
)

type PublishLogRepository interface {
	Create(ctx context.Context, log *entity.PublishLog) error
	ListByItem(ctx context.Context, scheduledItemID int64) ([]*entity.PublishLog, error)
	List(ctx context.Context, offset, limit int) ([]*entity.PublishLog, error)
}
