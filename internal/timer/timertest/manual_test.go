package timertest

import (
	"testing"
	"time"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(150 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("after 150ms order = %v", order)
	}

	m.Advance(time.Second)
	if got := len(order); got != 3 || order[1] != "b" || order[2] != "c" {
		t.Fatalf("final order = %v", order)
	}
	if m.Now() != 1150*time.Millisecond {
		t.Fatalf("Now = %v", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false

	tm := m.AfterFunc(10*time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Fatalf("Stop returned false for pending timer")
	}
	if m.Pending() != 0 {
		t.Fatalf("Pending = %d after Stop", m.Pending())
	}
	m.Advance(time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
	if tm.Stop() {
		t.Fatalf("second Stop returned true")
	}
}

func TestManualCallbackCanSchedule(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(25 * time.Millisecond)
	if count != 2 {
		t.Fatalf("count = %d after 25ms, want 2", count)
	}
	m.Advance(5 * time.Millisecond)
	if count != 3 {
		t.Fatalf("count = %d after 30ms, want 3", count)
	}
}
