package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type PageRepo struct {
	db *sql.DB
}

func NewPageRepo(db *sql.DB) repository.PageRepository {
	return &PageRepo{db: db}
}

func scanPage(row interface{ Scan(...any) error }) (*entity.Page, error) {
	var page entity.Page
	if err := row.Scan(&page.ID, &page.ExternalID, &page.Name, &page.Active, &page.CreatedAt); err != nil {
		return nil, err
	}
	return &page, nil
}

func (repo *PageRepo) Get(ctx context.Context, id int64) (*entity.Page, error) {
	const query = `
SELECT id, external_id, name, active, created_at
FROM pages
WHERE id = $1
LIMIT 1`
	page, err := scanPage(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return page, nil
}

func (repo *PageRepo) List(ctx context.Context) ([]*entity.Page, error) {
	const query = `
SELECT id, external_id, name, active, created_at
FROM pages
ORDER BY name ASC`
	return repo.queryPages(ctx, "List", query)
}

func (repo *PageRepo) ListByAccount(ctx context.Context, accountID int64) ([]*entity.Page, error) {
	const query = `
SELECT p.id, p.external_id, p.name, p.active, p.created_at
FROM pages p
INNER JOIN page_assignments pa ON pa.page_id = p.id
WHERE pa.account_id = $1
ORDER BY p.name ASC`
	return repo.queryPages(ctx, "ListByAccount", query, accountID)
}

func (repo *PageRepo) ListUnassigned(ctx context.Context) ([]*entity.Page, error) {
	const query = `
SELECT p.id, p.external_id, p.name, p.active, p.created_at
FROM pages p
LEFT JOIN page_assignments pa ON pa.page_id = p.id
WHERE pa.id IS NULL
ORDER BY p.name ASC`
	return repo.queryPages(ctx, "ListUnassigned", query)
}

func (repo *PageRepo) queryPages(ctx context.Context, op, query string, args ...any) ([]*entity.Page, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	pages := make([]*entity.Page, 0, 16)
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func (repo *PageRepo) Create(ctx context.Context, page *entity.Page) error {
	const query = `
INSERT INTO pages (external_id, name, active, created_at)
VALUES ($1, $2, $3, now())
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, page.ExternalID, page.Name, page.Active).
		Scan(&page.ID, &page.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PageRepo) Update(ctx context.Context, page *entity.Page) error {
	const query = `
UPDATE pages SET
       external_id = $1,
       name        = $2,
       active      = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, page.ExternalID, page.Name, page.Active, page.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *PageRepo) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("SetActive: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var wasActive bool
	err = tx.QueryRowContext(ctx, `SELECT active FROM pages WHERE id = $1 FOR UPDATE`, id).Scan(&wasActive)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("SetActive: %w", entity.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("SetActive: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE pages SET active = $1 WHERE id = $2`, active, id); err != nil {
		return false, fmt.Errorf("SetActive: %w", err)
	}
	return wasActive, tx.Commit()
}

func (repo *PageRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM pages WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *PageRepo) ListAssignments(ctx context.Context, pageID int64) ([]repository.AssignmentWithAccount, error) {
	const query = `
SELECT pa.id, pa.page_id, pa.account_id, pa.is_primary, pa.created_at, a.name AS account_name
FROM page_assignments pa
INNER JOIN accounts a ON a.id = pa.account_id
WHERE pa.page_id = $1
ORDER BY pa.is_primary DESC, a.name ASC`
	rows, err := repo.db.QueryContext(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("ListAssignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.AssignmentWithAccount, 0, 4)
	for rows.Next() {
		var assignment entity.PageAssignment
		var accountName string
		if err := rows.Scan(&assignment.ID, &assignment.PageID, &assignment.AccountID,
			&assignment.IsPrimary, &assignment.CreatedAt, &accountName); err != nil {
			return nil, fmt.Errorf("ListAssignments: Scan: %w", err)
		}
		result = append(result, repository.AssignmentWithAccount{
			Assignment:  &assignment,
			AccountName: accountName,
		})
	}
	return result, rows.Err()
}

// Assign upserts the page/account link. A page's first assignment becomes
// primary regardless of the requested flag; requesting primary on a later
// assignment goes through the same transactional swap as SetPrimary.
func (repo *PageRepo) Assign(ctx context.Context, pageID, accountID int64, primary bool) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Assign: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM page_assignments WHERE page_id = $1`, pageID).Scan(&existing); err != nil {
		return fmt.Errorf("Assign: count: %w", err)
	}
	if existing == 0 {
		primary = true
	}

	if primary {
		if _, err := tx.ExecContext(ctx,
			`UPDATE page_assignments SET is_primary = false WHERE page_id = $1`, pageID); err != nil {
			return fmt.Errorf("Assign: clear primary: %w", err)
		}
	}

	const upsert = `
INSERT INTO page_assignments (page_id, account_id, is_primary, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (page_id, account_id)
DO UPDATE SET is_primary = $3`
	if _, err := tx.ExecContext(ctx, upsert, pageID, accountID, primary); err != nil {
		return fmt.Errorf("Assign: upsert: %w", err)
	}

	return tx.Commit()
}

// Unassign removes the link. Removing the primary assignment promotes the
// oldest remaining assignment so the one-primary invariant survives.
func (repo *PageRepo) Unassign(ctx context.Context, pageID, accountID int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Unassign: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var wasPrimary bool
	err = tx.QueryRowContext(ctx, `
DELETE FROM page_assignments
WHERE page_id = $1 AND account_id = $2
RETURNING is_primary`, pageID, accountID).Scan(&wasPrimary)
	if err == sql.ErrNoRows {
		return fmt.Errorf("Unassign: %w", entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Unassign: %w", err)
	}

	if wasPrimary {
		const promote = `
UPDATE page_assignments SET is_primary = true
WHERE id = (
    SELECT id FROM page_assignments
    WHERE page_id = $1
    ORDER BY created_at ASC, id ASC
    LIMIT 1
)`
		if _, err := tx.ExecContext(ctx, promote, pageID); err != nil {
			return fmt.Errorf("Unassign: promote: %w", err)
		}
	}

	return tx.Commit()
}

// SetPrimary swaps the primary assignment inside one transaction: clear then
// set commit together, so readers never observe zero or two primaries.
func (repo *PageRepo) SetPrimary(ctx context.Context, pageID, accountID int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SetPrimary: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE page_assignments SET is_primary = false WHERE page_id = $1`, pageID); err != nil {
		return fmt.Errorf("SetPrimary: clear: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE page_assignments SET is_primary = true WHERE page_id = $1 AND account_id = $2`,
		pageID, accountID)
	if err != nil {
		return fmt.Errorf("SetPrimary: set: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SetPrimary: %w", entity.ErrNotFound)
	}

	return tx.Commit()
}

func (repo *PageRepo) GetPrimaryAccount(ctx context.Context, pageID int64) (*entity.Account, error) {
	const query = `
SELECT a.id, a.name, a.credential_ref, a.created_at
FROM accounts a
INNER JOIN page_assignments pa ON pa.account_id = a.id
WHERE pa.page_id = $1 AND pa.is_primary = true
LIMIT 1`
	var account entity.Account
	err := repo.db.QueryRowContext(ctx, query, pageID).
		Scan(&account.ID, &account.Name, &account.CredentialRef, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetPrimaryAccount: %w", err)
	}
	return &account, nil
}
