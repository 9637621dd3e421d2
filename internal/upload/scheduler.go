package upload

import (
	"sync/atomic"
	"time"
)

// timeScheduler runs callbacks with time.AfterFunc and hands them to dispatch
type timeScheduler struct {
	dispatch func(func())
}

// NewScheduler creates a wall-clock scheduler. When dispatch is not nil every
// callback is passed through it (the app uses fyne.Do) instead of running on the
// timer goroutine.
func NewScheduler(dispatch func(func())) Scheduler {
	return &timeScheduler{dispatch: dispatch}
}

// AfterFunc schedules f to run after d
func (s *timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &dispatchedTimer{}
	t.timer = time.AfterFunc(d, func() {
		if s.dispatch == nil {
			t.fire(f)
			return
		}
		s.dispatch(func() { t.fire(f) })
	})
	return t
}

// dispatchedTimer also suppresses callbacks that were already queued for dispatch when Stop ran
type dispatchedTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop cancels the callback
func (t *dispatchedTimer) Stop() bool {
	wasPending := !t.stopped.Swap(true)
	return t.timer.Stop() && wasPending
}

func (t *dispatchedTimer) fire(f func()) {
	if t.stopped.Swap(true) {
		return
	}
	f()
}
