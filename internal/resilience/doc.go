// Package resilience provides reliability and fault tolerance patterns for
// the application.
//
// The package supports:
//   - Circuit breakers for the outbound publishing API
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("publisher"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return publishPost()
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBStartupConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
