// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	tests := []struct {
		name        string
		policy      RetryPolicy
		wantRetries int
		wantDelay   time.Duration
	}{
		{name: "default", policy: DefaultRetryPolicy(), wantRetries: 2, wantDelay: time.Second},
		{name: "zero delay", policy: RetryPolicy{MaxAttempts: 3}, wantRetries: 2},
		{name: "single attempt", policy: RetryPolicy{MaxAttempts: 1, Delay: time.Second}, wantRetries: 0},
		{name: "non-positive attempts", policy: RetryPolicy{MaxAttempts: -2}, wantRetries: 0},
		{name: "negative delay", policy: RetryPolicy{MaxAttempts: 2, Delay: -time.Second}, wantRetries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.policy.backoff()

			retries := 0
			for {
				delay, stop := b.Next()
				if stop {
					break
				}
				assert.Equal(t, tt.wantDelay, delay)
				retries++
			}
			assert.Equal(t, tt.wantRetries, retries)
		})
	}
}
