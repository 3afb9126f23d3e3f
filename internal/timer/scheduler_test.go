package timer

import (
	"testing"
	"time"
)

func TestUIScheduler_Dispatches(t *testing.T) {
	dispatched := make(chan struct{}, 1)
	ran := make(chan struct{}, 1)

	s := NewUIScheduler(func(f func()) {
		dispatched <- struct{}{}
		f()
	})
	s.AfterFunc(time.Millisecond, func() { ran <- struct{}{} })

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatalf("callback was not dispatched")
	}
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("callback did not run")
	}
}

func TestUIScheduler_Stop(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := NewUIScheduler(nil)

	tm := s.AfterFunc(time.Hour, func() { ran <- struct{}{} })
	if !tm.Stop() {
		t.Fatalf("Stop on pending timer returned false")
	}
	if tm.Stop() {
		t.Fatalf("second Stop returned true")
	}
	select {
	case <-ran:
		t.Fatalf("stopped timer fired")
	default:
	}
}
