// Package debounce provides a delayed, cancelable, single-shot executor.
// Triggering it again before the delay expires cancels the pending run and
// reschedules, so a burst of triggers collapses into one execution. It backs
// both the item-save timer and the search settle timer.
package debounce

import (
	"sync"
	"time"
)

// Executor runs a function once after a quiet period. The zero value is not
// usable; construct with New.
type Executor struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// New returns an Executor with the given delay. A non-positive delay is
// clamped to 1ms so Trigger still fires asynchronously.
func New(delay time.Duration) *Executor {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &Executor{delay: delay}
}

// Trigger schedules fn to run after the delay, canceling any previously
// pending run first. Last write wins: only the fn from the most recent
// Trigger executes.
func (e *Executor) Trigger(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	seq := e.seq
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.delay, func() {
		e.mu.Lock()
		stale := seq != e.seq
		e.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// Cancel drops any pending run without executing it.
func (e *Executor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Delay returns the configured quiet period.
func (e *Executor) Delay() time.Duration {
	return e.delay
}
