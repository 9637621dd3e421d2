package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError   = "⚠"
	IconSuccess = "✔"
	IconUpload  = "⬆"
	IconReplace = "🔄"
	IconRemove  = "🗑️"

	// File type icons shown next to the file name
	IconPNG   = "🖼️"
	IconJPEG  = "📷"
	IconImage = "🎨"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	RestoredTimeLayout  = "2006-01-02 15:04:05"
)

// MaxDisplayNameLength is where file names get truncated in the info row
const MaxDisplayNameLength = 30

// Controller timings
const (
	ValidationDelay      = 800 * time.Millisecond
	ErrorDismissDelay    = 5 * time.Second
	SuccessFlashDuration = 3 * time.Second
)

// Animations
const (
	ShakeDuration                 = 300 * time.Millisecond
	ShakeOffset           float32 = 10
	ClickPulseDuration            = 300 * time.Millisecond
	DropSqueezeDuration           = 200 * time.Millisecond
	DropSqueezeScale      float32 = 0.98
	PercentBounceDuration         = 300 * time.Millisecond
	PercentBounceScale    float32 = 1.2
)

// Layout sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 640

	DropZoneMinWidth  float32 = 420
	DropZoneMinHeight float32 = 180

	PreviewMinHeight float32 = 220
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 200
	ToastHeight   float32 = 48
	ToastMargin   float32 = 20
	ToastAutoHide         = 2 * time.Second
)
