// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Account,
// Page, Content and ScheduledItem, along with their validation rules and
// domain-specific errors.
package entity

import "time"

// Account represents an external identity that owns zero or more pages.
// The credential reference is an opaque handle into the credential store;
// this core never interprets it.
type Account struct {
	ID            int64
	Name          string
	CredentialRef string
	CreatedAt     time.Time
}

// Validate checks the Account fields required at creation time.
func (a *Account) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}
