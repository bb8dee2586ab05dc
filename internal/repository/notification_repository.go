package repository

import (
	"context"
	"time"

	"post-scheduler/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, offset, limit int) ([]*entity.Notification, error)
	ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	// DeleteOlderThan prunes notifications created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
