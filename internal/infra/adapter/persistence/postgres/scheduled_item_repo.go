package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type ScheduledItemRepo struct {
	db *sql.DB
}

func NewScheduledItemRepo(db *sql.DB) repository.ScheduledItemRepository {
	return &ScheduledItemRepo{db: db}
}

const itemColumns = `id, content_id, page_id, scheduled_time, status, retry_count, max_retries,
       external_post_id, last_error, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*entity.ScheduledItem, error) {
	var item entity.ScheduledItem
	err := row.Scan(&item.ID, &item.ContentID, &item.PageID, &item.ScheduledTime,
		&item.Status, &item.RetryCount, &item.MaxRetries,
		&item.ExternalPostID, &item.LastError, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (repo *ScheduledItemRepo) Get(ctx context.Context, id int64) (*entity.ScheduledItem, error) {
	query := `
SELECT ` + itemColumns + `
FROM scheduled_items
WHERE id = $1
LIMIT 1`
	item, err := scanItem(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return item, nil
}

// List applies the filter with stable pagination: created_at ascending, ties
// broken by id ascending, so repeated pages never skip or repeat rows.
func (repo *ScheduledItemRepo) List(ctx context.Context, filter repository.ItemFilter, offset, limit int) ([]*entity.ScheduledItem, error) {
	whereClause, args := buildItemWhere(filter)
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT `+itemColumns+`
FROM scheduled_items
%s
ORDER BY created_at ASC, id ASC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	return repo.queryItems(ctx, "List", query, args...)
}

func (repo *ScheduledItemRepo) Count(ctx context.Context, filter repository.ItemFilter) (int64, error) {
	whereClause, args := buildItemWhere(filter)
	query := "SELECT COUNT(*) FROM scheduled_items " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func buildItemWhere(filter repository.ItemFilter) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PageID != nil {
		args = append(args, *filter.PageID)
		conditions = append(conditions, fmt.Sprintf("page_id = $%d", len(args)))
	}
	if filter.ContentID != nil {
		args = append(args, *filter.ContentID)
		conditions = append(conditions, fmt.Sprintf("content_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (repo *ScheduledItemRepo) queryItems(ctx context.Context, op, query string, args ...any) ([]*entity.ScheduledItem, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.ScheduledItem, 0, 32)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repo *ScheduledItemRepo) Create(ctx context.Context, item *entity.ScheduledItem) error {
	const query = `
INSERT INTO scheduled_items
       (content_id, page_id, scheduled_time, status, retry_count, max_retries, last_error, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		item.ContentID, item.PageID, item.ScheduledTime, item.Status,
		item.RetryCount, item.MaxRetries, item.LastError,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Transition is the compare-and-swap primitive every mutation path funnels
// through. The WHERE clause carries both id and expected status, so the
// update applies only if no concurrent caller changed the row first.
func (repo *ScheduledItemRepo) Transition(ctx context.Context, id int64, expected, next string, fields repository.TransitionFields) (bool, error) {
	if !entity.CanTransition(expected, next) {
		return false, fmt.Errorf("Transition: %s -> %s: %w", expected, next, entity.ErrInvalidState)
	}

	sets := []string{"status = $1", "updated_at = now()"}
	args := []any{next}

	if fields.ExternalPostID != nil {
		args = append(args, *fields.ExternalPostID)
		sets = append(sets, fmt.Sprintf("external_post_id = $%d", len(args)))
	}
	if fields.RetryCount != nil {
		args = append(args, *fields.RetryCount)
		sets = append(sets, fmt.Sprintf("retry_count = $%d", len(args)))
	}
	if fields.ScheduledTime != nil {
		args = append(args, fields.ScheduledTime.UTC())
		sets = append(sets, fmt.Sprintf("scheduled_time = $%d", len(args)))
	}
	if fields.LastError != nil {
		args = append(args, *fields.LastError)
		sets = append(sets, fmt.Sprintf("last_error = $%d", len(args)))
	}

	args = append(args, id, expected)
	query := fmt.Sprintf(`UPDATE scheduled_items SET %s WHERE id = $%d AND status = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("Transition: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Transition: %w", err)
	}
	return n == 1, nil
}

// DeletePending deletes only while the item is still pending. If the row
// exists but a cycle already claimed it, the caller gets ErrConflict and is
// expected to retry the delete after the cycle completes.
func (repo *ScheduledItemRepo) DeletePending(ctx context.Context, id int64) error {
	const query = `DELETE FROM scheduled_items WHERE id = $1 AND status = $2`
	res, err := repo.db.ExecContext(ctx, query, id, entity.ItemPending)
	if err != nil {
		return fmt.Errorf("DeletePending: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	var exists bool
	if err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM scheduled_items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("DeletePending: %w", err)
	}
	if exists {
		return fmt.Errorf("DeletePending: %w", entity.ErrConflict)
	}
	return fmt.Errorf("DeletePending: %w", entity.ErrNotFound)
}

func (repo *ScheduledItemRepo) ListDue(ctx context.Context, now time.Time) ([]*entity.ScheduledItem, error) {
	query := `
SELECT si.id, si.content_id, si.page_id, si.scheduled_time, si.status, si.retry_count, si.max_retries,
       si.external_post_id, si.last_error, si.created_at, si.updated_at
FROM scheduled_items si
INNER JOIN pages p ON p.id = si.page_id
WHERE si.status = $1
  AND si.scheduled_time <= $2
  AND p.active = true
ORDER BY si.scheduled_time ASC`
	return repo.queryItems(ctx, "ListDue", query, entity.ItemPending, now.UTC())
}

func (repo *ScheduledItemRepo) ListActiveInWindow(ctx context.Context, pageID int64, from, to time.Time) ([]*entity.ScheduledItem, error) {
	query := `
SELECT ` + itemColumns + `
FROM scheduled_items
WHERE page_id = $1
  AND status IN ($2, $3, $4)
  AND scheduled_time >= $5
  AND scheduled_time <= $6
ORDER BY scheduled_time ASC`
	return repo.queryItems(ctx, "ListActiveInWindow", query,
		pageID, entity.ItemPending, entity.ItemPublishing, entity.ItemSuccess,
		from.UTC(), to.UTC())
}

func (repo *ScheduledItemRepo) FindActive(ctx context.Context, contentID, pageID int64) (*entity.ScheduledItem, error) {
	query := `
SELECT ` + itemColumns + `
FROM scheduled_items
WHERE content_id = $1
  AND page_id = $2
  AND status IN ($3, $4, $5)
ORDER BY created_at DESC, id DESC
LIMIT 1`
	item, err := scanItem(repo.db.QueryRowContext(ctx, query,
		contentID, pageID, entity.ItemPending, entity.ItemPublishing, entity.ItemSuccess))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindActive: %w", err)
	}
	return item, nil
}

func (repo *ScheduledItemRepo) ListPendingByPage(ctx context.Context, pageID int64) ([]*entity.ScheduledItem, error) {
	query := `
SELECT ` + itemColumns + `
FROM scheduled_items
WHERE page_id = $1 AND status = $2
ORDER BY scheduled_time ASC`
	return repo.queryItems(ctx, "ListPendingByPage", query, pageID, entity.ItemPending)
}

// ReclaimStuck sweeps items a crashed or wedged worker left in publishing.
// updated_at is the claim time, so anything claimed before the cutoff is
// safe to hand back to the pending queue.
func (repo *ScheduledItemRepo) ReclaimStuck(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
UPDATE scheduled_items SET status = $1, updated_at = now()
WHERE status = $2 AND updated_at < $3`
	res, err := repo.db.ExecContext(ctx, query, entity.ItemPending, entity.ItemPublishing, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("ReclaimStuck: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ReclaimStuck: %w", err)
	}
	return n, nil
}
