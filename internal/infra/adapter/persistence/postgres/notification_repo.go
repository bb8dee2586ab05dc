package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) repository.NotificationRepository {
	return &NotificationRepo{db: db}
}

func (repo *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	const query = `
INSERT INTO notifications (kind, title, message, page_id, scheduled_item_id, read, created_at)
VALUES ($1, $2, $3, $4, $5, false, now())
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		n.Kind, n.Title, n.Message, n.PageID, n.ScheduledItemID,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *NotificationRepo) List(ctx context.Context, offset, limit int) ([]*entity.Notification, error) {
	const query = `
SELECT id, kind, title, message, page_id, scheduled_item_id, read, created_at
FROM notifications
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	return repo.queryNotifications(ctx, "List", query, limit, offset)
}

func (repo *NotificationRepo) ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error) {
	const query = `
SELECT id, kind, title, message, page_id, scheduled_item_id, read, created_at
FROM notifications
WHERE read = false
ORDER BY created_at DESC, id DESC
LIMIT $1`
	return repo.queryNotifications(ctx, "ListUnread", query, limit)
}

func (repo *NotificationRepo) queryNotifications(ctx context.Context, op, query string, args ...any) ([]*entity.Notification, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	notifications := make([]*entity.Notification, 0, 32)
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &n.Message,
			&n.PageID, &n.ScheduledItemID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (repo *NotificationRepo) UnreadCount(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE read = false`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("UnreadCount: %w", err)
	}
	return count, nil
}

func (repo *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	const query = `UPDATE notifications SET read = true WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("MarkRead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("MarkRead: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *NotificationRepo) MarkAllRead(ctx context.Context) error {
	const query = `UPDATE notifications SET read = true WHERE read = false`
	if _, err := repo.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("MarkAllRead: %w", err)
	}
	return nil
}

func (repo *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM notifications WHERE created_at < $1`
	res, err := repo.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	return n, nil
}
