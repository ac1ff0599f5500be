// Package search holds the debounced search term. The raw value tracks
// every keystroke immediately; the settled value, which the query engine
// filters on, lags behind by the debounce interval so filtering does not
// run on every keystroke.
package search

import (
	"sync"
	"time"

	"github.com/ticklab/ticklist/internal/debounce"
)

// DefaultDelay is the settle interval applied when none is configured.
const DefaultDelay = 300 * time.Millisecond

// Debouncer tracks a raw and a settled search term. Update stores the raw
// term immediately and schedules the settle; a newer Update before the
// timer fires cancels the pending settle, so only the last value settles.
type Debouncer struct {
	exec *debounce.Executor

	mu       sync.Mutex
	raw      string
	settled  string
	onSettle func(string)
}

// New returns a Debouncer with the given settle delay. A non-positive
// delay falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{exec: debounce.New(delay)}
}

// OnSettle registers a callback invoked with the settled term each time a
// settle fires. Used by callers that re-run the projection on settle.
func (d *Debouncer) OnSettle(fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSettle = fn
}

// Update records a new raw term. Updating to the current raw value is a
// no-op so redundant events do not reset the timer.
func (d *Debouncer) Update(raw string) {
	d.mu.Lock()
	if raw == d.raw {
		d.mu.Unlock()
		return
	}
	d.raw = raw
	d.mu.Unlock()

	d.exec.Trigger(func() {
		d.mu.Lock()
		d.settled = d.raw
		settled := d.settled
		fn := d.onSettle
		d.mu.Unlock()
		if fn != nil {
			fn(settled)
		}
	})
}

// Flush cancels any pending settle and settles the raw term immediately.
// One-shot callers with no keystroke stream, like a CLI invocation, use it
// to get the settled term without waiting out the delay.
func (d *Debouncer) Flush() {
	d.exec.Cancel()

	d.mu.Lock()
	d.settled = d.raw
	settled := d.settled
	fn := d.onSettle
	d.mu.Unlock()
	if fn != nil {
		fn(settled)
	}
}

// Delay returns the configured settle interval.
func (d *Debouncer) Delay() time.Duration {
	return d.exec.Delay()
}

// Raw returns the most recent term, reflecting keystrokes instantly.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Settled returns the term the query engine should filter on.
func (d *Debouncer) Settled() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}
