package repository

import (
	"context"

	"post-scheduler/internal/domain/entity"
)

type TimeSlotRepository interface {
	Get(ctx context.Context, id int64) (*entity.TimeSlot, error)
	ListByPage(ctx context.Context, pageID int64) ([]*entity.TimeSlot, error)
	Create(ctx context.Context, slot *entity.TimeSlot) error
	Update(ctx context.Context, slot *entity.TimeSlot) error
	Delete(ctx context.Context, id int64) error
}
