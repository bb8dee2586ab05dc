package account

import (
	"context"
	"fmt"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// CreateInput represents the input parameters for creating a new account.
type CreateInput struct {
	Name          string
	CredentialRef string
}

// UpdateInput represents the input parameters for updating an existing account.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID            int64
	Name          *string
	CredentialRef *string
}

// Service provides account management use cases.
type Service struct {
	Repo     repository.AccountRepository
	PageRepo repository.PageRepository
}

// List retrieves all accounts.
func (s *Service) List(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Get retrieves a single account by its ID.
// Returns ErrInvalidAccountID if the ID is not positive.
// Returns ErrAccountNotFound if the account does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Account, error) {
	if id <= 0 {
		return nil, ErrInvalidAccountID
	}
	account, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ListPages retrieves the pages assigned to an account.
func (s *Service) ListPages(ctx context.Context, id int64) ([]*entity.Page, error) {
	if id <= 0 {
		return nil, ErrInvalidAccountID
	}
	pages, err := s.PageRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list pages by account: %w", err)
	}
	return pages, nil
}

// Create creates a new account with the provided input.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Account, error) {
	account := &entity.Account{
		Name:          in.Name,
		CredentialRef: in.CredentialRef,
		CreatedAt:     time.Now(),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if account.CredentialRef == "" {
		return nil, &entity.ValidationError{Field: "credential_ref", Message: "credential_ref is required"}
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Update modifies an existing account. Only non-nil fields are updated.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidAccountID
	}

	account, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return &entity.ValidationError{Field: "name", Message: "cannot be empty"}
		}
		account.Name = *in.Name
	}
	if in.CredentialRef != nil {
		if *in.CredentialRef == "" {
			return &entity.ValidationError{Field: "credential_ref", Message: "cannot be empty"}
		}
		account.CredentialRef = *in.CredentialRef
	}

	if err := s.Repo.Update(ctx, account); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete removes an account by its ID.
// Returns ErrInvalidAccountID if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAccountID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
