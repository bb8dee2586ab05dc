package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type PublishLogRepo struct {
	db *sql.DB
}

func NewPublishLogRepo(db *sql.DB) repository.PublishLogRepository {
	return &PublishLogRepo{db: db}
}

func (repo *PublishLogRepo) Create(ctx context.Context, log *entity.PublishLog) error {
	const query = `
INSERT INTO publish_logs
       (scheduled_item_id, content_id, page_id, status, external_post_id, error_message, attempted_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING id, attempted_at`
	err := repo.db.QueryRowContext(ctx, query,
		log.ScheduledItemID, log.ContentID, log.PageID,
		log.Status, log.ExternalPostID, log.ErrorMessage,
	).Scan(&log.ID, &log.AttemptedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PublishLogRepo) ListByItem(ctx context.Context, scheduledItemID int64) ([]*entity.PublishLog, error) {
	const query = `
SELECT id, scheduled_item_id, content_id, page_id, status, external_post_id, error_message, attempted_at
FROM publish_logs
WHERE scheduled_item_id = $1
ORDER BY attempted_at ASC, id ASC`
	return repo.queryLogs(ctx, "ListByItem", query, scheduledItemID)
}

func (repo *PublishLogRepo) List(ctx context.Context, offset, limit int) ([]*entity.PublishLog, error) {
	const query = `
SELECT id, scheduled_item_id, content_id, page_id, status, external_post_id, error_message, attempted_at
FROM publish_logs
ORDER BY attempted_at DESC, id DESC
LIMIT $1 OFFSET $2`
	return repo.queryLogs(ctx, "List", query, limit, offset)
}

func (repo *PublishLogRepo) queryLogs(ctx context.Context, op, query string, args ...any) ([]*entity.PublishLog, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	logs := make([]*entity.PublishLog, 0, 32)
	for rows.Next() {
		var log entity.PublishLog
		if err := rows.Scan(&log.ID, &log.ScheduledItemID, &log.ContentID, &log.PageID,
			&log.Status, &log.ExternalPostID, &log.ErrorMessage, &log.AttemptedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
