// Package publisher provides abstraction for publishing content to external
// social pages. It defines the Publisher interface which allows different
// publishing backends (Graph API, static test double) to be used
// interchangeably through dependency injection.
package publisher

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies a publish failure for retry decisions.
type ErrorKind string

const (
	// KindTransient marks failures worth retrying (5xx, rate limits, timeouts).
	KindTransient ErrorKind = "transient"
	// KindPermanent marks failures that will not succeed on retry (4xx).
	KindPermanent ErrorKind = "permanent"
)

// PublishError carries the failure classification from a publish attempt.
type PublishError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *PublishError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s publish error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s publish error: %s", e.Kind, e.Message)
}

// IsTransient reports whether the error should be retried. Unclassified
// errors (network failures, context timeouts) are treated as transient.
func IsTransient(err error) bool {
	var pubErr *PublishError
	if errors.As(err, &pubErr) {
		return pubErr.Kind == KindTransient
	}
	return true
}

// Request describes a single publish of one content to one page.
type Request struct {
	PageExternalID string
	AccessToken    string
	Message        string
	MediaRefs      []string
}

// Publisher sends content to an external page.
// Implementations should handle rate limiting and error classification
// internally; retry scheduling is the caller's responsibility.
type Publisher interface {
	// Publish posts the request to the external service and returns the
	// external post ID on success. Failures are classified via PublishError
	// so the caller can decide between retrying and giving up.
	Publish(ctx context.Context, req Request) (string, error)
}
