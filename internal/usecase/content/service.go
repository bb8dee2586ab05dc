package content

import (
	"context"
	"fmt"
	"time"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// CreateInput represents the input parameters for creating new content.
type CreateInput struct {
	Body      string
	MediaRefs []string
}

// UpdateInput represents the input parameters for updating existing content.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID        int64
	Body      *string
	MediaRefs *[]string
}

// Service provides content management use cases.
type Service struct {
	Repo     repository.ContentRepository
	ItemRepo repository.ScheduledItemRepository
}

// PaginatedResult represents the result of a paginated content query.
type PaginatedResult struct {
	Data       []*entity.Content
	Pagination pagination.Metadata
}

// Get retrieves a single content by its ID.
// Returns ErrInvalidContentID if the ID is not positive.
// Returns ErrContentNotFound if the content does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Content, error) {
	if id <= 0 {
		return nil, ErrInvalidContentID
	}
	content, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return content, nil
}

// ListPaginated retrieves contents with pagination support.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contents: %w", err)
	}

	contents, err := s.Repo.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	return &PaginatedResult{
		Data: contents,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Create creates new draft content.
// Returns a ValidationError if the input is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Content, error) {
	now := time.Now()
	content := &entity.Content{
		Body:      in.Body,
		MediaRefs: in.MediaRefs,
		Status:    entity.ContentDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return content, nil
}

// Update modifies existing content. Only non-nil fields are updated.
// The edit is rejected with ErrContentInUse when any referencing scheduled
// item has left the pending state: what was delivered (or is being delivered)
// must stay inspectable as it went out.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidContentID
	}

	content, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get content: %w", err)
	}
	if content == nil {
		return ErrContentNotFound
	}

	editable, err := s.allReferencingItemsPending(ctx, in.ID)
	if err != nil {
		return err
	}
	if !editable {
		return ErrContentInUse
	}

	if in.Body != nil {
		content.Body = *in.Body
	}
	if in.MediaRefs != nil {
		content.MediaRefs = *in.MediaRefs
	}
	if err := content.Validate(); err != nil {
		return err
	}
	content.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, content); err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// Delete removes content. Like Update, it is rejected with ErrContentInUse
// once any referencing item has left the pending state.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidContentID
	}

	deletable, err := s.allReferencingItemsPending(ctx, id)
	if err != nil {
		return err
	}
	if !deletable {
		return ErrContentInUse
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

func (s *Service) allReferencingItemsPending(ctx context.Context, contentID int64) (bool, error) {
	items, err := s.ItemRepo.List(ctx, repository.ItemFilter{ContentID: &contentID}, 0, referencingItemsProbeLimit)
	if err != nil {
		return false, fmt.Errorf("list referencing items: %w", err)
	}
	for _, item := range items {
		if item.Status != entity.ItemPending {
			return false, nil
		}
	}
	return true, nil
}

// referencingItemsProbeLimit bounds the editability check. A content is never
// scheduled to anywhere near this many pages in practice.
const referencingItemsProbeLimit = 1000
