package upload

import (
	"time"

	"github.com/ytget/image-drop/internal/model"
)

// Uploader defines the interface for the simulated upload service.
type Uploader interface {
	// Start begins a new run, cancelling any run still in flight
	Start(fileName string, onProgress func(percent int), onComplete func()) *model.UploadTask

	// Cancel stops the active run; it is safe to call when nothing runs
	Cancel()

	// Active reports whether a run still owns timers
	Active() bool
}

// Timer is a handle to a pending callback.
type Timer interface {
	// Stop prevents the callback from firing; it returns false if it already fired or was stopped
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Pacer decides how far and how fast the simulated upload advances.
type Pacer interface {
	// Step returns the next progress increment in percent
	Step() int

	// Interval returns the delay before the next tick
	Interval() time.Duration
}
