package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRawUpdatesImmediately(t *testing.T) {
	d := New(50 * time.Millisecond)

	d.Update("mil")
	assert.Equal(t, "mil", d.Raw())
	assert.Equal(t, "", d.Settled(), "settled lags behind raw")
}

func TestRapidUpdatesSettleOnce(t *testing.T) {
	d := New(40 * time.Millisecond)

	var settles atomic.Int64
	d.OnSettle(func(string) { settles.Add(1) })

	for _, term := range []string{"m", "mi", "mil", "milk"} {
		d.Update(term)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	assert.Equal(t, int64(1), settles.Load(), "one settle per burst")
	assert.Equal(t, "milk", d.Settled())
	assert.Equal(t, "milk", d.Raw())
}

func TestRedundantUpdateDoesNotResetTimer(t *testing.T) {
	d := New(40 * time.Millisecond)

	d.Update("milk")
	time.Sleep(25 * time.Millisecond)
	// Same value again; the pending settle must not be pushed out.
	d.Update("milk")
	time.Sleep(25 * time.Millisecond)

	assert.Equal(t, "milk", d.Settled())
}

func TestClearingSettlesEmptyTerm(t *testing.T) {
	d := New(20 * time.Millisecond)

	d.Update("walk dog")
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, "walk dog", d.Settled())

	d.Update("")
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, "", d.Settled())
}

func TestFlushSettlesImmediately(t *testing.T) {
	d := New(time.Hour) // never settles on its own

	var settles atomic.Int64
	d.OnSettle(func(string) { settles.Add(1) })

	d.Update("milk")
	assert.Equal(t, "", d.Settled())

	d.Flush()
	assert.Equal(t, "milk", d.Settled())
	assert.Equal(t, int64(1), settles.Load())
}

func TestFlushCancelsPendingSettle(t *testing.T) {
	d := New(30 * time.Millisecond)

	var settles atomic.Int64
	d.OnSettle(func(string) { settles.Add(1) })

	d.Update("milk")
	d.Flush()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(1), settles.Load(), "timer settle dropped after flush")
}

func TestDelayReportsConfiguredInterval(t *testing.T) {
	assert.Equal(t, 42*time.Millisecond, New(42*time.Millisecond).Delay())
	assert.Equal(t, DefaultDelay, New(0).Delay())
}
