package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// PreviewInput requests candidate times for one content across pages.
// PreferredDate anchors the slot scan at that calendar date; zero means
// "as soon as possible". When RequestedTime is set it takes precedence and
// the explicit time is validated against every page's collision window.
type PreviewInput struct {
	ContentID     int64
	PageIDs       []int64
	PreferredDate time.Time
	RequestedTime *time.Time
}

// Candidate is a previewed (page, time) pair. Conflict marks a candidate
// that was advanced past an occupied slot, so the caller can tell a
// first-choice time from a bumped one. Nothing is persisted until the
// candidate is passed back through Confirm.
type Candidate struct {
	PageID        int64     `json:"page_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Conflict      bool      `json:"conflict"`
}

// ConfirmInput persists previewed allocations. A zero ScheduledTime asks for
// a fresh allocation anchored at PreferredDate, so Confirm also works
// without a prior Preview. Force skips the collision re-check and books the
// time regardless; forced items carry "conflict-overridden" in last_error
// for audit.
type ConfirmInput struct {
	ContentID     int64
	Allocations   []Candidate
	PreferredDate time.Time
	Force         bool
}

// Service provides slot allocation and scheduled item management use cases.
type Service struct {
	ItemRepo    repository.ScheduledItemRepository
	ContentRepo repository.ContentRepository
	PageRepo    repository.PageRepository
	LogRepo     repository.PublishLogRepository
	Allocator   *Allocator

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// PaginatedResult represents the result of a paginated scheduled item query.
type PaginatedResult struct {
	Data       []*entity.ScheduledItem
	Pagination pagination.Metadata
}

// Preview computes a candidate time per requested page without persisting
// anything. The result is ordered earliest candidate time first, ties broken
// by lowest page ID, and is deterministic for a given store state.
//
// Returns a SlotConflictError when an explicit RequestedTime collides on one
// or more pages, and entity.ErrNoSlotAvailable when a page has no free slot
// inside the look-ahead window.
func (s *Service) Preview(ctx context.Context, in PreviewInput) ([]Candidate, error) {
	pages, err := s.resolvePages(ctx, in.ContentID, in.PageIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if in.RequestedTime != nil && !in.RequestedTime.After(now) {
		return nil, &entity.ValidationError{Field: "scheduled_time", Message: "scheduled_time must be in the future"}
	}

	scanStart := s.Allocator.ScanStart(in.PreferredDate, now)

	candidates := make([]Candidate, 0, len(pages))
	var conflicts []int64
	for _, page := range pages {
		if in.RequestedTime != nil {
			occupied, err := s.Allocator.HasCollision(ctx, page.ID, *in.RequestedTime)
			if err != nil {
				return nil, err
			}
			if occupied {
				conflicts = append(conflicts, page.ID)
				continue
			}
			candidates = append(candidates, Candidate{PageID: page.ID, ScheduledTime: *in.RequestedTime})
			continue
		}

		t, bumped, err := s.Allocator.CandidateFor(ctx, page.ID, scanStart)
		if err != nil {
			return nil, fmt.Errorf("allocate slot for page %d: %w", page.ID, err)
		}
		candidates = append(candidates, Candidate{PageID: page.ID, ScheduledTime: t, Conflict: bumped})
	}

	if len(conflicts) > 0 {
		return nil, &entity.SlotConflictError{PageIDs: conflicts}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].ScheduledTime.Equal(candidates[j].ScheduledTime) {
			return candidates[i].ScheduledTime.Before(candidates[j].ScheduledTime)
		}
		return candidates[i].PageID < candidates[j].PageID
	})
	return candidates, nil
}

// Confirm turns allocations into pending scheduled items. Every candidate is
// re-validated at write time: a slot occupied since preview surfaces as a
// SlotConflictError and nothing is created. Confirm is idempotent per
// (content, page) pair; an already active item is returned instead of a
// duplicate being booked.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput) ([]*entity.ScheduledItem, error) {
	if len(in.Allocations) == 0 {
		return nil, &entity.ValidationError{Field: "allocations", Message: "at least one allocation is required"}
	}

	pageIDs := make([]int64, 0, len(in.Allocations))
	requested := make(map[int64]time.Time, len(in.Allocations))
	for _, alloc := range in.Allocations {
		if _, dup := requested[alloc.PageID]; dup {
			return nil, &entity.ValidationError{Field: "allocations", Message: fmt.Sprintf("page %d appears more than once", alloc.PageID)}
		}
		pageIDs = append(pageIDs, alloc.PageID)
		requested[alloc.PageID] = alloc.ScheduledTime
	}

	pages, err := s.resolvePages(ctx, in.ContentID, pageIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()

	// Phase one: resolve a final time per page and re-check collisions.
	// Nothing is written until every page has a bookable time.
	type plan struct {
		page       *entity.Page
		existing   *entity.ScheduledItem
		at         time.Time
		overridden bool
	}
	plans := make([]plan, 0, len(pages))
	var conflicts []int64
	for _, page := range pages {
		existing, err := s.ItemRepo.FindActive(ctx, in.ContentID, page.ID)
		if err != nil {
			return nil, fmt.Errorf("find active item: %w", err)
		}
		if existing != nil {
			plans = append(plans, plan{page: page, existing: existing})
			continue
		}

		at := requested[page.ID]
		var overridden bool
		if at.IsZero() {
			at, _, err = s.Allocator.CandidateFor(ctx, page.ID, s.Allocator.ScanStart(in.PreferredDate, now))
			if err != nil {
				return nil, fmt.Errorf("allocate slot for page %d: %w", page.ID, err)
			}
		} else {
			if !at.After(now) {
				return nil, &entity.ValidationError{Field: "scheduled_time", Message: "scheduled_time must be in the future"}
			}
			occupied, err := s.Allocator.HasCollision(ctx, page.ID, at)
			if err != nil {
				return nil, err
			}
			if occupied {
				if !in.Force {
					conflicts = append(conflicts, page.ID)
					continue
				}
				// forced into an occupied window; recorded on the item
				overridden = true
			}
		}
		plans = append(plans, plan{page: page, at: at, overridden: overridden})
	}

	if len(conflicts) > 0 {
		return nil, &entity.SlotConflictError{PageIDs: conflicts}
	}

	// Phase two: persist.
	items := make([]*entity.ScheduledItem, 0, len(plans))
	for _, p := range plans {
		if p.existing != nil {
			items = append(items, p.existing)
			continue
		}
		item := &entity.ScheduledItem{
			ContentID:     in.ContentID,
			PageID:        p.page.ID,
			ScheduledTime: p.at,
			Status:        entity.ItemPending,
			MaxRetries:    entity.DefaultMaxRetries,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if p.overridden {
			item.LastError = entity.ConflictOverridden
		}
		if err := item.Validate(now); err != nil {
			return nil, err
		}
		if err := s.ItemRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create scheduled item: %w", err)
		}
		items = append(items, item)
		slog.Info("scheduled item confirmed",
			slog.Int64("item_id", item.ID),
			slog.Int64("content_id", item.ContentID),
			slog.Int64("page_id", item.PageID),
			slog.Time("scheduled_time", item.ScheduledTime),
			slog.Bool("forced", in.Force))
	}

	if err := s.ContentRepo.SetStatus(ctx, in.ContentID, entity.ContentScheduled); err != nil {
		return nil, fmt.Errorf("mark content scheduled: %w", err)
	}
	return items, nil
}

// resolvePages validates the content and loads the requested pages, sorted by
// ID. Inactive pages are rejected outright; scheduling onto a page nobody can
// publish to would just strand the item.
func (s *Service) resolvePages(ctx context.Context, contentID int64, pageIDs []int64) ([]*entity.Page, error) {
	if contentID <= 0 {
		return nil, &entity.ValidationError{Field: "content_id", Message: "must be positive"}
	}
	if len(pageIDs) == 0 {
		return nil, &entity.ValidationError{Field: "page_ids", Message: "at least one page is required"}
	}

	content, err := s.ContentRepo.Get(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	sorted := make([]int64, len(pageIDs))
	copy(sorted, pageIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	pages := make([]*entity.Page, 0, len(sorted))
	for _, id := range sorted {
		page, err := s.PageRepo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get page: %w", err)
		}
		if page == nil {
			return nil, fmt.Errorf("page %d: %w", id, ErrPageNotFound)
		}
		if !page.Active {
			return nil, fmt.Errorf("page %d: %w", id, ErrPageInactive)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Get retrieves a single scheduled item by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.ScheduledItem, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}
	item, err := s.ItemRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scheduled item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ListPaginated retrieves scheduled items matching the filter with stable
// pagination.
func (s *Service) ListPaginated(ctx context.Context, filter repository.ItemFilter, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.ItemRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count scheduled items: %w", err)
	}

	items, err := s.ItemRepo.List(ctx, filter, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list scheduled items: %w", err)
	}

	return &PaginatedResult{
		Data: items,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Delete removes a scheduled item, but only while it is still pending. An
// item that already left pending, whether claimed by a dispatch cycle or
// long since delivered, reports entity.ErrConflict.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidItemID
	}
	if err := s.ItemRepo.DeletePending(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete scheduled item: %w", err)
	}
	return nil
}

// Retry revives a failed item: the retry counter resets and the item
// re-enters the pending pool scheduled for immediate dispatch. Only failed
// items can be retried; anything else reports entity.ErrInvalidState.
func (s *Service) Retry(ctx context.Context, id int64) (*entity.ScheduledItem, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}

	item, err := s.ItemRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scheduled item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.Status != entity.ItemFailed {
		return nil, fmt.Errorf("retry item %d in status %q: %w", id, item.Status, entity.ErrInvalidState)
	}

	now := s.now()
	zero := 0
	ok, err := s.ItemRepo.Transition(ctx, id, entity.ItemFailed, entity.ItemPending, repository.TransitionFields{
		RetryCount:    &zero,
		ScheduledTime: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("retry scheduled item: %w", err)
	}
	if !ok {
		return nil, entity.ErrConflict
	}

	slog.Info("scheduled item manually retried", slog.Int64("item_id", id))

	item, err = s.ItemRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scheduled item: %w", err)
	}
	return item, nil
}

// ListLogs retrieves the per-attempt publish history of a scheduled item,
// oldest attempt first.
func (s *Service) ListLogs(ctx context.Context, itemID int64) ([]*entity.PublishLog, error) {
	if itemID <= 0 {
		return nil, ErrInvalidItemID
	}
	item, err := s.ItemRepo.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get scheduled item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	logs, err := s.LogRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list publish logs: %w", err)
	}
	return logs, nil
}
