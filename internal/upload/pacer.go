package upload

import (
	"math/rand/v2"
	"time"
)

// Simulated upload pacing
const (
	MinStep     = 3
	MaxStep     = 17
	MinInterval = 150 * time.Millisecond
	MaxInterval = 300 * time.Millisecond // exclusive
	SettleDelay = 500 * time.Millisecond
)

// randomPacer produces the "realistic" variable throughput of the simulated upload
type randomPacer struct{}

// NewRandomPacer creates a pacer with random steps in [MinStep, MaxStep] and
// random intervals in [MinInterval, MaxInterval).
func NewRandomPacer() Pacer {
	return randomPacer{}
}

// Step returns a random increment
func (randomPacer) Step() int {
	return MinStep + rand.IntN(MaxStep-MinStep+1)
}

// Interval returns a random tick delay
func (randomPacer) Interval() time.Duration {
	return MinInterval + rand.N(MaxInterval-MinInterval)
}
