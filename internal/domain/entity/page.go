package entity

import "time"

// Page represents an external publishing destination. ExternalID is the
// identifier the destination platform knows the page by; it is what the
// Publisher receives.
type Page struct {
	ID         int64
	ExternalID string
	Name       string
	Active     bool
	CreatedAt  time.Time
}

// Validate checks the Page fields required at creation time.
func (p *Page) Validate() error {
	if p.ExternalID == "" {
		return &ValidationError{Field: "external_id", Message: "external_id is required"}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

// PageAssignment links a Page to an Account. A page may be assigned to many
// accounts, but exactly one assignment per page carries IsPrimary at any
// instant; the repository enforces the swap atomically.
type PageAssignment struct {
	ID        int64
	PageID    int64
	AccountID int64
	IsPrimary bool
	CreatedAt time.Time
}
