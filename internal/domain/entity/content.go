package entity

import "time"

// Content lifecycle states.
const (
	ContentDraft     = "draft"
	ContentScheduled = "scheduled"
	ContentPublished = "published"
)

// Content is the publishable unit: a body of text plus references to already
// uploaded media. Once a ScheduledItem references it, edits are only accepted
// while every referencing item is still pending.
type Content struct {
	ID        int64
	Body      string
	MediaRefs []string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the Content fields required at creation time.
func (c *Content) Validate() error {
	if c.Body == "" && len(c.MediaRefs) == 0 {
		return &ValidationError{Field: "body", Message: "body or media_refs is required"}
	}
	if c.Status != "" && !validContentStatus(c.Status) {
		return &ValidationError{Field: "status", Message: "status must be draft, scheduled or published"}
	}
	return nil
}

func validContentStatus(s string) bool {
	switch s {
	case ContentDraft, ContentScheduled, ContentPublished:
		return true
	}
	return false
}
