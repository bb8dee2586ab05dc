package repository

import (
	"context"

	"post-scheduler/internal/domain/entity"
)

// AssignmentWithAccount pairs an assignment with the assigned account's name
// for listing; the account entity itself is looked up on read, never embedded
// in stored rows.
type AssignmentWithAccount struct {
	Assignment  *entity.PageAssignment
	AccountName string
}

type PageRepository interface {
	Get(ctx context.Context, id int64) (*entity.Page, error)
	List(ctx context.Context) ([]*entity.Page, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*entity.Page, error)
	// ListUnassigned returns pages with no assignment to any account.
	ListUnassigned(ctx context.Context) ([]*entity.Page, error)
	Create(ctx context.Context, page *entity.Page) error
	Update(ctx context.Context, page *entity.Page) error
	// SetActive flips the active flag and returns the previous value so the
	// caller can tell a real deactivation from a no-op.
	SetActive(ctx context.Context, id int64, active bool) (wasActive bool, err error)
	Delete(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context, pageID int64) ([]AssignmentWithAccount, error)
	// Assign creates or updates the page/account link. The first assignment
	// of a page always becomes primary so the one-primary invariant holds
	// from the moment a page is assigned at all.
	Assign(ctx context.Context, pageID, accountID int64, primary bool) error
	Unassign(ctx context.Context, pageID, accountID int64) error
	// SetPrimary swaps the primary assignment in a single transaction; at no
	// observable instant does the page have zero or two primaries.
	SetPrimary(ctx context.Context, pageID, accountID int64) error
	GetPrimaryAccount(ctx context.Context, pageID int64) (*entity.Account, error)
}
