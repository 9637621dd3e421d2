package model

import "time"

// UploadTask represents a single simulated upload run
type UploadTask struct {
	ID         string
	FileName   string
	Status     UploadStatus
	Percent    int       // 0 to 100, never decreases within a run
	StartedAt  time.Time // when the first tick was scheduled
	FinishedAt time.Time // when the run completed or was cancelled
}

// Duration returns how long the run took, or zero while it is still active
func (ut *UploadTask) Duration() time.Duration {
	if ut.FinishedAt.IsZero() || ut.StartedAt.IsZero() {
		return 0
	}
	return ut.FinishedAt.Sub(ut.StartedAt)
}
