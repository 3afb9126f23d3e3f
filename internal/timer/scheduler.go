// Package timer provides cancellable one-shot timers whose callbacks run on
// the UI goroutine.
package timer

import "time"

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback. It reports false if it already ran or was stopped.
	Stop() bool
}

// Scheduler creates one-shot timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// DispatchFunc runs f on the UI goroutine, fyne.Do in the application.
type DispatchFunc func(f func())

// UIScheduler fires time.AfterFunc timers through a dispatcher.
type UIScheduler struct {
	dispatch DispatchFunc
}

func NewUIScheduler(dispatch DispatchFunc) *UIScheduler {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &UIScheduler{dispatch: dispatch}
}

func (s *UIScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		s.dispatch(f)
	})
}
