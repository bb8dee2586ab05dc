// Package dispatch implements the periodic delivery cycle: claiming due
// scheduled items, publishing them with bounded concurrency, and routing
// failures through the retry policy. The conditional Transition on the item
// store is the only claim mechanism; two overlapping cycles can never publish
// the same item twice.
package dispatch

import (
	"math/rand"
	"time"
)

// Retry policy defaults: 1m, 2m, 4m ... capped at 1h, plus jitter.
const (
	DefaultBaseDelay = time.Minute
	DefaultMaxDelay  = time.Hour
)

// RetryPolicy computes the delay before a transiently failed item is due
// again. The schedule is exponential in the retry count with an upper cap,
// plus a random jitter of up to one base delay so retries from the same
// failed cycle do not come due in lockstep.
type RetryPolicy struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration

	// Jitter returns a random duration in [0, max). Injectable for tests;
	// defaults to math/rand.
	Jitter func(max time.Duration) time.Duration
}

// DefaultRetryPolicy returns the production retry policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		BaseDelay: DefaultBaseDelay,
		MaxDelay:  DefaultMaxDelay,
	}
}

func (p RetryPolicy) base() time.Duration {
	if p.BaseDelay > 0 {
		return p.BaseDelay
	}
	return DefaultBaseDelay
}

func (p RetryPolicy) max() time.Duration {
	if p.MaxDelay > 0 {
		return p.MaxDelay
	}
	return DefaultMaxDelay
}

func (p RetryPolicy) jitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	if p.Jitter != nil {
		return p.Jitter(max)
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// NextAttempt decides the fate of a failed publish attempt: a positive delay
// and true when the item should be rescheduled, or false when the failure is
// terminal. Permanent failures are always terminal; transient ones become
// terminal once the retry budget is spent.
func (p RetryPolicy) NextAttempt(retryCount, maxRetries int, transient bool) (time.Duration, bool) {
	if !transient || retryCount >= maxRetries {
		return 0, false
	}
	return p.NextDelay(retryCount), true
}

// NextDelay returns the delay before the attempt following retryCount prior
// retries. Without jitter the sequence is nondecreasing: base, 2*base,
// 4*base and so on up to the cap.
func (p RetryPolicy) NextDelay(retryCount int) time.Duration {
	base, cap := p.base(), p.max()

	delay := base
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay >= cap {
			delay = cap
			break
		}
	}
	if delay > cap {
		delay = cap
	}
	return delay + p.jitter(base)
}
