package repository

import (
	"context"
	"time"

	"post-scheduler/internal/domain/entity"
)

// ItemFilter narrows List queries. Nil fields match everything. Results are
// ordered by created_at ascending with id ascending as the tie-break so
// pagination is stable across pages.
type ItemFilter struct {
	Status    *string
	PageID    *int64
	ContentID *int64
}

// TransitionFields are the columns a conditional Transition may set alongside
// the status change. Nil fields are left untouched.
type TransitionFields struct {
	ExternalPostID *string
	RetryCount     *int
	ScheduledTime  *time.Time
	LastError      *string
}

type ScheduledItemRepository interface {
	Get(ctx context.Context, id int64) (*entity.ScheduledItem, error)
	List(ctx context.Context, filter ItemFilter, offset, limit int) ([]*entity.ScheduledItem, error)
	Count(ctx context.Context, filter ItemFilter) (int64, error)
	Create(ctx context.Context, item *entity.ScheduledItem) error

	// Transition applies a compare-and-swap status change: it succeeds only
	// if the stored status still equals expected at the moment of the
	// update. Returns false (and no error) when another caller won the race.
	// This is the single serialization point for every mutation path.
	Transition(ctx context.Context, id int64, expected, next string, fields TransitionFields) (bool, error)

	// DeletePending removes an item only while it is still pending; a
	// concurrent cycle that already claimed it wins and the delete reports
	// entity.ErrConflict.
	DeletePending(ctx context.Context, id int64) error

	// ListDue returns pending items with scheduled_time <= now on active
	// pages, ordered by scheduled_time ascending.
	ListDue(ctx context.Context, now time.Time) ([]*entity.ScheduledItem, error)

	// ListActiveInWindow returns items for the page whose scheduled_time
	// falls in [from, to] and whose status still occupies the collision
	// window (pending, publishing or success).
	ListActiveInWindow(ctx context.Context, pageID int64, from, to time.Time) ([]*entity.ScheduledItem, error)

	// FindActive returns the newest non-terminal-failed item for the
	// (content, page) pair, or nil. Confirm uses it for idempotency.
	FindActive(ctx context.Context, contentID, pageID int64) (*entity.ScheduledItem, error)

	// ListPendingByPage returns pending items for a page (deactivation
	// warnings are emitted per affected item).
	ListPendingByPage(ctx context.Context, pageID int64) ([]*entity.ScheduledItem, error)

	// ReclaimStuck moves items left in publishing since before the cutoff
	// back to pending and returns how many were reclaimed. This bounds the
	// blast radius of a worker that crashed mid-cycle.
	ReclaimStuck(ctx context.Context, cutoff time.Time) (int64, error)
}
