package services

import (
	"fmt"
	"sync"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// DefaultOrderTimeout is the payment window applied when no explicit
// configuration is supplied.
const DefaultOrderTimeout = 1800 * time.Second

// TimeoutPolicy decides when an unpaid order has expired. Expiry is lazy:
// nothing sweeps the store in the background; the policy is consulted
// whenever order state is read on the payment path, and an observer that
// sees an expired order appends the terminal event itself.
//
// The window is runtime-tunable through an administrative command, so the
// policy is injected at construction instead of living in ambient global
// state. Reads and writes of the window are mutex-guarded; Expired itself
// is a pure function of (creation time, now, window).
type TimeoutPolicy struct {
	mu      sync.RWMutex
	timeout time.Duration
}

// NewTimeoutPolicy creates a policy with the given payment window.
func NewTimeoutPolicy(timeout time.Duration) (*TimeoutPolicy, error) {
	if timeout <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"timeout",
			fmt.Errorf("%s is not a positive duration", timeout),
		)
	}
	return &TimeoutPolicy{timeout: timeout}, nil
}

// Timeout returns the current payment window.
func (p *TimeoutPolicy) Timeout() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.timeout
}

// SetTimeout replaces the payment window. Administrative operation; the
// new window applies to every subsequent expiry check, including orders
// created before the change.
func (p *TimeoutPolicy) SetTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeout",
			fmt.Errorf("%s is not a positive duration", timeout),
		)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeout = timeout
	return nil
}

// Expired reports whether an order created at createdAt has exceeded the
// payment window as of now.
func (p *TimeoutPolicy) Expired(createdAt kernel.Timestamp, now time.Time) bool {
	return createdAt.Age(now) > p.Timeout()
}
