package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) repository.ContentRepository {
	return &ContentRepo{db: db}
}

// media_refs is stored as a JSONB string array; marshalling stays inside the
// repo so the entity carries a plain []string.
func marshalMediaRefs(refs []string) ([]byte, error) {
	if refs == nil {
		refs = []string{}
	}
	return json.Marshal(refs)
}

func scanContent(row interface{ Scan(...any) error }) (*entity.Content, error) {
	var content entity.Content
	var refs []byte
	err := row.Scan(&content.ID, &content.Body, &refs, &content.Status,
		&content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(refs) > 0 {
		if err := json.Unmarshal(refs, &content.MediaRefs); err != nil {
			return nil, fmt.Errorf("unmarshal media_refs: %w", err)
		}
	}
	return &content, nil
}

func (repo *ContentRepo) Get(ctx context.Context, id int64) (*entity.Content, error) {
	const query = `
SELECT id, body, media_refs, status, created_at, updated_at
FROM contents
WHERE id = $1
LIMIT 1`
	content, err := scanContent(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return content, nil
}

func (repo *ContentRepo) List(ctx context.Context, offset, limit int) ([]*entity.Content, error) {
	const query = `
SELECT id, body, media_refs, status, created_at, updated_at
FROM contents
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contents := make([]*entity.Content, 0, limit)
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

func (repo *ContentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM contents`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ContentRepo) Create(ctx context.Context, content *entity.Content) error {
	refs, err := marshalMediaRefs(content.MediaRefs)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO contents (body, media_refs, status, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
RETURNING id, created_at, updated_at`
	err = repo.db.QueryRowContext(ctx, query, content.Body, refs, content.Status).
		Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ContentRepo) Update(ctx context.Context, content *entity.Content) error {
	refs, err := marshalMediaRefs(content.MediaRefs)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	const query = `
UPDATE contents SET
       body       = $1,
       media_refs = $2,
       updated_at = now()
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, content.Body, refs, content.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ContentRepo) SetStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE contents SET status = $1, updated_at = now() WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("SetStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SetStatus: %w", entity.ErrNotFound)
	}
	return nil
}

// MarkPublished flips to published only once; the WHERE guard makes the call
// idempotent and tells the caller whether this was the first delivery.
func (repo *ContentRepo) MarkPublished(ctx context.Context, id int64) (bool, error) {
	const query = `
UPDATE contents SET status = $1, updated_at = now()
WHERE id = $2 AND status <> $1`
	res, err := repo.db.ExecContext(ctx, query, entity.ContentPublished, id)
	if err != nil {
		return false, fmt.Errorf("MarkPublished: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("MarkPublished: %w", err)
	}
	return n == 1, nil
}

func (repo *ContentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contents WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
