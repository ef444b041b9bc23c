package timens

import (
	"sync/atomic"
	"time"

	"github.com/clipperhouse/ntime"
)

// Clock is the source of wall-clock readings behind [Now]. The
// package uses [SystemClock] unless a test swaps it via [SetClock].
type Clock interface {
	Now() Time
}

type systemClock struct{}

func (systemClock) Now() Time {
	return Time(time.Now().UnixNano())
}

// SystemClock reads the operating system's wall clock.
var SystemClock Clock = systemClock{}

var activeClock atomic.Pointer[Clock]

func init() {
	activeClock.Store(&SystemClock)
}

// Now returns the current wall-clock time. Monotonicity is not
// guaranteed: the wall clock is subject to adjustment, and two
// concurrent calls may observe either order.
func Now() Time {
	return (*activeClock.Load()).Now()
}

// SetClock replaces the clock behind [Now], returning a function
// that restores the previous one. Intended for tests.
func SetClock(c Clock) (restore func()) {
	prev := activeClock.Swap(&c)
	return func() { activeClock.Store(prev) }
}

// Pause suspends the calling goroutine for approximately d. The
// actual delay is at least d, never guaranteed exact. Non-positive
// spans return immediately.
func Pause(d Span) {
	if d <= 0 {
		return
	}
	time.Sleep(d.StdDuration())
}

// InterruptiblePause is [Pause] with an early-exit channel. It
// returns (0, false) after sleeping the full span. If interrupt is
// closed or receives first, it returns the unslept remainder and
// true. The remainder is measured against a monotonic source, so
// wall-clock steps during the sleep cannot skew it.
func InterruptiblePause(d Span, interrupt <-chan struct{}) (remaining Span, interrupted bool) {
	if d <= 0 {
		return 0, false
	}
	start := ntime.Now()
	timer := time.NewTimer(d.StdDuration())
	defer timer.Stop()
	select {
	case <-timer.C:
		return 0, false
	case <-interrupt:
		remaining = d.Sub(OfStdDuration(ntime.Now().Sub(start)))
		if remaining < 0 {
			remaining = 0
		}
		return remaining, true
	}
}

// PauseForever never returns. Suitable only as a terminal goroutine
// action; there is no cancellation.
func PauseForever() {
	select {}
}
