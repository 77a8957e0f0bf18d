// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts Run calls and blocks until its context is done.
type blockingWorker struct {
	runCount atomic.Int32
}

func (m *blockingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	other := &blockingWorker{}

	ws := NewWorkers(other)
	ws.Add(WorkerFunc(func(context.Context) error { return boom }))

	err := ws.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestWorkers_Run_FinishOnOwn(t *testing.T) {
	var calls atomic.Int32
	ws := NewWorkers(
		WorkerFunc(func(context.Context) error { calls.Add(1); return nil }),
		WorkerFunc(func(context.Context) error { calls.Add(1); return nil }),
	)

	assert.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, int32(2), calls.Load())
}
