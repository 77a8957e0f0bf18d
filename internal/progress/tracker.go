// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progress provides the task-count based progress tracker shared by
// the stages of a sync run.
//
// A [Tracker] counts units of work that are pending (registered, not
// started) and in flight (started, not finished). Every mutation is
// serialized by a single mutex and followed by a change notification to all
// subscribers, so stages running on separate goroutines can report progress
// without further coordination.
package progress

import (
	"errors"
	"sync"
)

// ErrNothingOutstanding is the panic value raised when a unit is completed
// while the tracker has no pending or in-flight work. It always indicates an
// unbalanced AddTasks/TaskCompleted pair in the caller.
var ErrNothingOutstanding = errors.New("progress: task completed with nothing outstanding")

// Snapshot is an immutable view of the tracker counters.
type Snapshot struct {
	Pending  int `json:"pending"`
	InFlight int `json:"in_flight"`
}

// Outstanding returns the number of units not finished yet.
func (s Snapshot) Outstanding() int {
	return s.Pending + s.InFlight
}

// Complete reports whether no work is outstanding.
func (s Snapshot) Complete() bool {
	return s.Outstanding() == 0
}

// Tracker counts pending and in-flight work units.
//
// The zero value is ready to use.
type Tracker struct {
	mu       sync.Mutex
	pending  int
	inFlight int

	nextID      int
	subscribers map[int]chan Snapshot
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// AddTasks registers n pending units. It panics if n is negative.
func (t *Tracker) AddTasks(n int) {
	if n < 0 {
		panic("progress: negative task count")
	}
	if n == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending += n
	t.notifyLocked()
}

// TaskStarted moves one unit from pending to in flight. When nothing is
// pending the unit is registered and started in one step.
func (t *Tracker) TaskStarted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending > 0 {
		t.pending--
	}
	t.inFlight++
	t.notifyLocked()
}

// TaskCompleted retires one unit, in-flight work first, then pending work
// that will never start. It panics with [ErrNothingOutstanding] if nothing
// is outstanding.
func (t *Tracker) TaskCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.inFlight > 0:
		t.inFlight--
	case t.pending > 0:
		t.pending--
	default:
		panic(ErrNothingOutstanding)
	}
	t.notifyLocked()
}

// Drain retires every outstanding unit at once and returns how many were
// retired. It is used to drive a cancelled run to completion after all of
// its goroutines have returned.
func (t *Tracker) Drain() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.pending + t.inFlight
	if n == 0 {
		return 0
	}
	t.pending, t.inFlight = 0, 0
	t.notifyLocked()
	return n
}

// IsComplete reports whether both counters are zero.
func (t *Tracker) IsComplete() bool {
	return t.Snapshot().Complete()
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

// Subscribe returns a channel receiving a snapshot after every mutation and
// a func that unsubscribes and closes the channel.
//
// Delivery is latest-wins: a slow subscriber only ever sees the most recent
// snapshot, never a stale backlog. The current state is delivered
// immediately.
func (t *Tracker) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	t.mu.Lock()
	if t.subscribers == nil {
		t.subscribers = make(map[int]chan Snapshot)
	}
	id := t.nextID
	t.nextID++
	t.subscribers[id] = ch
	ch <- t.snapshotLocked()
	t.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.subscribers, id)
			close(ch)
		})
	}
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{Pending: t.pending, InFlight: t.inFlight}
}

// notifyLocked must be called with t.mu held. Sends never block: the only
// sender is the mutex holder, so after draining a stale value the buffered
// slot is free.
func (t *Tracker) notifyLocked() {
	s := t.snapshotLocked()
	for _, ch := range t.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
