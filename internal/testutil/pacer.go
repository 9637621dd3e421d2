package testutil

import (
	"sync"
	"time"
)

// FixedPacer always advances by the same step after the same interval
type FixedPacer struct {
	StepSize int
	Delay    time.Duration
}

// Step returns the configured step
func (p FixedPacer) Step() int {
	return p.StepSize
}

// Interval returns the configured delay
func (p FixedPacer) Interval() time.Duration {
	return p.Delay
}

// SequencePacer replays a list of steps and intervals, repeating the last value
type SequencePacer struct {
	mu        sync.Mutex
	steps     []int
	intervals []time.Duration
	stepIdx   int
	delayIdx  int
}

// NewSequencePacer creates a pacer replaying steps and intervals
func NewSequencePacer(steps []int, intervals []time.Duration) *SequencePacer {
	return &SequencePacer{steps: steps, intervals: intervals}
}

// Step returns the next step
func (p *SequencePacer) Step() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.steps[min(p.stepIdx, len(p.steps)-1)]
	p.stepIdx++
	return v
}

// Interval returns the next interval
func (p *SequencePacer) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.intervals[min(p.delayIdx, len(p.intervals)-1)]
	p.delayIdx++
	return v
}
