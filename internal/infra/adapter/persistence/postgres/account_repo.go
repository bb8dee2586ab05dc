// Package postgres implements the repository interfaces on PostgreSQL via
// database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) repository.AccountRepository {
	return &AccountRepo{db: db}
}

func (repo *AccountRepo) Get(ctx context.Context, id int64) (*entity.Account, error) {
	const query = `
SELECT id, name, credential_ref, created_at
FROM accounts
WHERE id = $1
LIMIT 1`
	var account entity.Account
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Name, &account.CredentialRef, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &account, nil
}

func (repo *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	const query = `
SELECT id, name, credential_ref, created_at
FROM accounts
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*entity.Account, 0, 16)
	for rows.Next() {
		var account entity.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.CredentialRef, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		accounts = append(accounts, &account)
	}
	return accounts, rows.Err()
}

func (repo *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	const query = `
INSERT INTO accounts (name, credential_ref, created_at)
VALUES ($1, $2, now())
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, account.Name, account.CredentialRef).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AccountRepo) Update(ctx context.Context, account *entity.Account) error {
	const query = `
UPDATE accounts SET
       name           = $1,
       credential_ref = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, account.Name, account.CredentialRef, account.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *AccountRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM accounts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
