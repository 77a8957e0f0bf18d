// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// DefaultPoolSize is used when a pool is created with a non-positive size.
const DefaultPoolSize = 4

// Pool bounds the number of jobs running at the same time.
// A job holds its slot only while fn runs.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

func (p *Pool) Size() int {
	return p.size
}

// Do waits for a free slot, runs fn on the calling goroutine and releases
// the slot. If ctx is done before a slot frees up, fn is not called and the
// context error is returned.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire pool slot: %w", err)
	}
	defer p.sem.Release(1)

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
