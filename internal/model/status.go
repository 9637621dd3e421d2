package model

// UploadStatus represents the status of a simulated upload run
type UploadStatus string

const (
	// UploadStatusPending means the run is created but no tick happened yet
	UploadStatusPending UploadStatus = "Pending"

	// UploadStatusUploading means progress ticks are being emitted
	UploadStatusUploading UploadStatus = "Uploading"

	// UploadStatusFinalizing means progress reached 100 and the settle delay is running
	UploadStatusFinalizing UploadStatus = "Finalizing"

	// UploadStatusCompleted means the completion callback fired
	UploadStatusCompleted UploadStatus = "Completed"

	// UploadStatusCancelled means the run was replaced or stopped before completion
	UploadStatusCancelled UploadStatus = "Cancelled"
)

// String returns the string representation of UploadStatus
func (us UploadStatus) String() string {
	return string(us)
}

// IsActive returns true if the run still owns timers
func (us UploadStatus) IsActive() bool {
	return us == UploadStatusPending || us == UploadStatusUploading || us == UploadStatusFinalizing
}

// Phase is the state of the uploader screen
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseError
	PhaseUploading
	PhasePreviewReady
	PhaseSuccessFlash
)

// String returns a readable phase name for logs
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseValidating:
		return "Validating"
	case PhaseError:
		return "Error"
	case PhaseUploading:
		return "Uploading"
	case PhasePreviewReady:
		return "PreviewReady"
	case PhaseSuccessFlash:
		return "SuccessFlash"
	default:
		return "Unknown"
	}
}

// ShowsPreview returns true for phases where the stored or uploaded image is on screen
func (p Phase) ShowsPreview() bool {
	return p == PhasePreviewReady || p == PhaseSuccessFlash
}
