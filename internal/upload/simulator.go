package upload

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/image-drop/internal/model"
)

// Task ID prefix for simulated upload runs
const TaskIDPrefix = "upload-"

// Simulator fakes an upload: it advances a percentage on a repeating timer and
// reports completion after a short settle delay. Only one run is active at a time.
type Simulator struct {
	scheduler Scheduler
	pacer     Pacer
	now       func() time.Time

	mu      sync.Mutex
	current *run
}

// run is the state owned by one Start call
type run struct {
	task       *model.UploadTask
	timer      Timer
	onProgress func(percent int)
	onComplete func()
}

// NewSimulator creates a new upload simulator
func NewSimulator(scheduler Scheduler, pacer Pacer) *Simulator {
	if pacer == nil {
		pacer = NewRandomPacer()
	}
	return &Simulator{
		scheduler: scheduler,
		pacer:     pacer,
		now:       time.Now,
	}
}

// Start begins a simulated upload for fileName. A run that is still in flight is
// cancelled first so two progress streams never race on the same UI.
func (s *Simulator) Start(fileName string, onProgress func(percent int), onComplete func()) *model.UploadTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	r := &run{
		task: &model.UploadTask{
			ID:        generateTaskID(),
			FileName:  fileName,
			Status:    model.UploadStatusPending,
			Percent:   0,
			StartedAt: s.now(),
		},
		onProgress: onProgress,
		onComplete: onComplete,
	}
	s.current = r
	r.timer = s.scheduler.AfterFunc(s.pacer.Interval(), func() { s.tick(r) })

	log.Printf("Upload %s started for %s", r.task.ID, fileName)

	snapshot := *r.task
	return &snapshot
}

// Cancel stops the active run, if any
func (s *Simulator) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Active reports whether a run is in flight
func (s *Simulator) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.task.Status.IsActive()
}

// Current returns a copy of the active run's task
func (s *Simulator) Current() (model.UploadTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.UploadTask{}, false
	}
	return *s.current.task, true
}

// cancelLocked must be called with s.mu held
func (s *Simulator) cancelLocked() {
	r := s.current
	if r == nil {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.task.Status = model.UploadStatusCancelled
	r.task.FinishedAt = s.now()
	s.current = nil

	log.Printf("Upload %s cancelled at %d%%", r.task.ID, r.task.Percent)
}

// tick advances the run by one step and schedules either the next tick or the settle delay
func (s *Simulator) tick(r *run) {
	s.mu.Lock()
	if s.current != r {
		// Stale timer from a replaced run
		s.mu.Unlock()
		return
	}

	step := s.pacer.Step()
	if step < 1 {
		step = 1
	}
	if remaining := 100 - r.task.Percent; step > remaining {
		step = remaining
	}
	r.task.Percent += step
	r.task.Status = model.UploadStatusUploading
	percent := r.task.Percent

	if percent >= 100 {
		r.task.Status = model.UploadStatusFinalizing
		r.timer = s.scheduler.AfterFunc(SettleDelay, func() { s.finish(r) })
	} else {
		r.timer = s.scheduler.AfterFunc(s.pacer.Interval(), func() { s.tick(r) })
	}
	onProgress := r.onProgress
	s.mu.Unlock()

	if onProgress != nil {
		onProgress(percent)
	}
}

// finish completes the run and fires the completion callback exactly once
func (s *Simulator) finish(r *run) {
	s.mu.Lock()
	if s.current != r {
		s.mu.Unlock()
		return
	}
	r.task.Status = model.UploadStatusCompleted
	r.task.FinishedAt = s.now()
	s.current = nil
	onComplete := r.onComplete
	s.mu.Unlock()

	log.Printf("Upload %s completed in %v", r.task.ID, r.task.Duration())

	if onComplete != nil {
		onComplete()
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return fmt.Sprintf("%s%s", TaskIDPrefix, uuid.New().String())
}
