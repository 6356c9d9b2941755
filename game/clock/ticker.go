// Package clock gates fixed-rate game logic on a monotonic time source.
package clock

import "time"

// Source reports time elapsed since an arbitrary fixed epoch. It must never go backwards.
type Source interface {
	Now() time.Duration
}

// Monotonic measures time since its creation using the runtime's monotonic clock.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Now() time.Duration {
	return time.Since(m.start)
}

// Manual is a Source that only moves when told to.
type Manual struct {
	now time.Duration
}

func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.now += d
}

// Ticker decouples the logic tick from the render loop.
type Ticker struct {
	source   Source
	lastTick time.Duration
}

func NewTicker(source Source) *Ticker {
	return &Ticker{source: source}
}

// Elapsed reports whether at least interval has passed since the last
// successful call, moving the reference forward only when it has.
func (t *Ticker) Elapsed(interval time.Duration) bool {
	now := t.source.Now()
	if now-t.lastTick >= interval {
		t.lastTick = now
		return true
	}
	return false
}
