package page

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
	"post-scheduler/internal/usecase/notify"
)

// CreateInput represents the input parameters for creating a new page.
type CreateInput struct {
	ExternalID string
	Name       string
}

// UpdateInput represents the input parameters for updating an existing page.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID         int64
	ExternalID *string
	Name       *string
}

// Service provides page management use cases, including account assignments
// and activation state.
type Service struct {
	Repo     repository.PageRepository
	ItemRepo repository.ScheduledItemRepository
	SlotRepo repository.TimeSlotRepository
	Notifier *notify.Service
}

// List retrieves all pages.
func (s *Service) List(ctx context.Context) ([]*entity.Page, error) {
	pages, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// ListUnassigned retrieves pages not assigned to any account. These pages
// can never be published to, so surfacing them is an operator aid.
func (s *Service) ListUnassigned(ctx context.Context) ([]*entity.Page, error) {
	pages, err := s.Repo.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unassigned pages: %w", err)
	}
	return pages, nil
}

// Get retrieves a single page by its ID.
// Returns ErrInvalidPageID if the ID is not positive.
// Returns ErrPageNotFound if the page does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Page, error) {
	if id <= 0 {
		return nil, ErrInvalidPageID
	}
	page, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// Create creates a new page. Pages start active.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Page, error) {
	page := &entity.Page{
		ExternalID: in.ExternalID,
		Name:       in.Name,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

// Update modifies an existing page. Only non-nil fields are updated.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidPageID
	}

	page, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return ErrPageNotFound
	}

	if in.ExternalID != nil {
		if *in.ExternalID == "" {
			return &entity.ValidationError{Field: "external_id", Message: "cannot be empty"}
		}
		page.ExternalID = *in.ExternalID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return &entity.ValidationError{Field: "name", Message: "cannot be empty"}
		}
		page.Name = *in.Name
	}

	if err := s.Repo.Update(ctx, page); err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPageID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// Deactivate marks a page inactive. Pending items on the page stay pending
// (dispatch skips inactive pages and picks them up again on reactivation),
// and a warning notification is emitted per stranded item. Deactivating an
// already inactive page is a no-op.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPageID
	}

	page, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return ErrPageNotFound
	}

	wasActive, err := s.Repo.SetActive(ctx, id, false)
	if err != nil {
		return fmt.Errorf("deactivate page: %w", err)
	}
	if !wasActive {
		return nil
	}

	pending, err := s.ItemRepo.ListPendingByPage(ctx, id)
	if err != nil {
		// Deactivation itself succeeded; the warnings are best-effort.
		slog.Error("failed to list pending items for deactivated page",
			slog.Int64("page_id", id),
			slog.Any("error", err))
		return nil
	}
	for _, item := range pending {
		s.Notifier.EmitPageDeactivated(ctx, page, item)
	}

	slog.Info("page deactivated",
		slog.Int64("page_id", id),
		slog.Int("stranded_items", len(pending)))
	return nil
}

// Activate marks a page active again. Pending items become dispatchable on
// the next cycle.
func (s *Service) Activate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPageID
	}
	if _, err := s.Repo.SetActive(ctx, id, true); err != nil {
		return fmt.Errorf("activate page: %w", err)
	}
	return nil
}

// ListAssignments retrieves the account assignments of a page.
func (s *Service) ListAssignments(ctx context.Context, pageID int64) ([]repository.AssignmentWithAccount, error) {
	if pageID <= 0 {
		return nil, ErrInvalidPageID
	}
	assignments, err := s.Repo.ListAssignments(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// Assign links a page to an account. The first assignment of a page always
// becomes primary regardless of the primary argument.
func (s *Service) Assign(ctx context.Context, pageID, accountID int64, primary bool) error {
	if pageID <= 0 {
		return ErrInvalidPageID
	}
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	if err := s.Repo.Assign(ctx, pageID, accountID, primary); err != nil {
		return fmt.Errorf("assign page: %w", err)
	}
	return nil
}

// Unassign removes the link between a page and an account. If the removed
// assignment was primary, the oldest remaining assignment is promoted.
func (s *Service) Unassign(ctx context.Context, pageID, accountID int64) error {
	if pageID <= 0 {
		return ErrInvalidPageID
	}
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	if err := s.Repo.Unassign(ctx, pageID, accountID); err != nil {
		return fmt.Errorf("unassign page: %w", err)
	}
	return nil
}

// SetPrimary makes the given account the page's primary assignment. The swap
// is atomic; no reader ever observes zero or two primaries.
func (s *Service) SetPrimary(ctx context.Context, pageID, accountID int64) error {
	if pageID <= 0 {
		return ErrInvalidPageID
	}
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	if err := s.Repo.SetPrimary(ctx, pageID, accountID); err != nil {
		return fmt.Errorf("set primary assignment: %w", err)
	}
	return nil
}

// ListTimeSlots retrieves the recurring time slots of a page.
func (s *Service) ListTimeSlots(ctx context.Context, pageID int64) ([]*entity.TimeSlot, error) {
	if pageID <= 0 {
		return nil, ErrInvalidPageID
	}
	slots, err := s.SlotRepo.ListByPage(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return slots, nil
}

// AddTimeSlot creates a recurring time slot for a page.
func (s *Service) AddTimeSlot(ctx context.Context, slot *entity.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if err := s.SlotRepo.Create(ctx, slot); err != nil {
		return fmt.Errorf("create time slot: %w", err)
	}
	return nil
}

// RemoveTimeSlot deletes a time slot. Existing scheduled items keep their
// times; slots only constrain future allocations.
func (s *Service) RemoveTimeSlot(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.SlotRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}
