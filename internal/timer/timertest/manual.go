// Package timertest provides a deterministic timer.Scheduler for tests.
package timertest

import (
	"sort"
	"time"

	"samtalsstod/internal/timer"
)

// Manual is a virtual clock. Callbacks run synchronously from Advance, in
// deadline order, on the calling goroutine.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	clock    *Manual
	deadline time.Duration
	seq      int
	f        func()
	done     bool
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) timer.Timer {
	m.seq++
	t := &manualTimer{clock: m, deadline: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that comes due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		next.done = true
		m.remove(next)
		next.f()
	}
	m.now = target
}

// Now is the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending counts timers that have neither fired nor been stopped.
func (m *Manual) Pending() int {
	return len(m.pending)
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline == m.pending[j].deadline {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].deadline < m.pending[j].deadline
	})
	if m.pending[0].deadline > target {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
