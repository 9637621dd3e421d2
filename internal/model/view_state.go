package model

// UIState is everything the uploader window draws. The controller owns it and
// hands a copy to the view after every transition.
type UIState struct {
	Phase Phase

	// Loading is the indicator shown during the validation delay
	Loading bool

	// Error banner
	ErrorMessage string

	// File info row
	FileName string
	FileSize string
	FileIcon string

	// Progress bar
	ProgressVisible bool
	Percent         int

	// Preview
	PreviewVisible bool
	PreviewDimmed  bool
	DataURI        string
	RestoredNote   string

	ActionsVisible bool
	SuccessVisible bool
}

// ErrorVisible reports whether the error banner is shown
func (s UIState) ErrorVisible() bool {
	return s.ErrorMessage != ""
}

// VisibleIndicators counts the shown indicators among error, loading and success.
// A consistent state never shows more than one.
func (s UIState) VisibleIndicators() int {
	n := 0
	if s.ErrorVisible() {
		n++
	}
	if s.Loading {
		n++
	}
	if s.SuccessVisible {
		n++
	}
	return n
}
