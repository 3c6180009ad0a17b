// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds the attempts of authentication and remote calls.
type RetryPolicy struct {
	// MaxAttempts includes the first try. Values below 1 mean 1.
	MaxAttempts int
	// Delay is the fixed pause between attempts. Tests use zero.
	Delay time.Duration
}

// DefaultRetryPolicy is three attempts one second apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: time.Second}
}

// backoff returns a fresh constant backoff. A new value is needed for every
// retry loop since WithMaxRetries counts across calls.
func (p RetryPolicy) backoff() retry.Backoff {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := max(p.Delay, 0)

	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	})
	return retry.WithMaxRetries(uint64(attempts-1), constant)
}
