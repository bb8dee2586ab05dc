// Package repository defines the persistence interfaces the use cases depend
// on. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"post-scheduler/internal/domain/entity"
)

type AccountRepository interface {
	Get(ctx context.Context, id int64) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id int64) error
}
