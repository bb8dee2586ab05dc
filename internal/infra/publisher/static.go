package publisher

import (
	"context"
	"fmt"
	"sync"
)

// StaticPublisher is an in-memory Publisher for tests and local development.
// It records every request and returns deterministic post IDs, or a
// configured error when one is set.
type StaticPublisher struct {
	mu       sync.Mutex
	requests []Request
	nextErr  error
	counter  int
}

// NewStaticPublisher creates a StaticPublisher that succeeds by default.
func NewStaticPublisher() *StaticPublisher {
	return &StaticPublisher{}
}

// Publish records the request and returns a synthetic post ID, or the
// configured error.
func (s *StaticPublisher) Publish(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.nextErr != nil {
		return "", s.nextErr
	}
	s.counter++
	return fmt.Sprintf("static-post-%d", s.counter), nil
}

// Fail makes subsequent Publish calls return err until cleared with Fail(nil).
func (s *StaticPublisher) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErr = err
}

// Requests returns a copy of all recorded publish requests.
func (s *StaticPublisher) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}
