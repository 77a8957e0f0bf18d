// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Unlimited(t *testing.T) {
	r := newRateLimiter(0)
	for i := 0; i < 100; i++ {
		assert.NoError(t, r.Wait(context.Background()))
	}
}

func TestRateLimiter_Backoff(t *testing.T) {
	r := newRateLimiter(0)
	r.Backoff(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_BackoffNeverShortens(t *testing.T) {
	r := newRateLimiter(0)
	r.Backoff(time.Hour)
	first := r.retryAt
	r.Backoff(time.Second)
	assert.Equal(t, first, r.retryAt)
}

func TestRateLimiter_CancelledContext(t *testing.T) {
	r := newRateLimiter(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Wait(ctx))
}
