package testutil

import (
	"github.com/ytget/image-drop/internal/model"
)

// RecordingView captures everything a controller asks its view to do
type RecordingView struct {
	States        []model.UIState
	Shakes        int
	ChooserOpened int
	Notifications []string
}

// Render records state
func (v *RecordingView) Render(state model.UIState) {
	v.States = append(v.States, state)
}

// Shake counts shake requests
func (v *RecordingView) Shake() {
	v.Shakes++
}

// OpenFileChooser counts chooser requests
func (v *RecordingView) OpenFileChooser() {
	v.ChooserOpened++
}

// Notify records a toast message
func (v *RecordingView) Notify(message string) {
	v.Notifications = append(v.Notifications, message)
}

// Last returns the most recently rendered state
func (v *RecordingView) Last() model.UIState {
	if len(v.States) == 0 {
		return model.UIState{}
	}
	return v.States[len(v.States)-1]
}

// Phases returns the distinct phases in render order, collapsing repeats
func (v *RecordingView) Phases() []model.Phase {
	var phases []model.Phase
	for _, s := range v.States {
		if len(phases) == 0 || phases[len(phases)-1] != s.Phase {
			phases = append(phases, s.Phase)
		}
	}
	return phases
}

// Percents returns every progress value rendered while uploading
func (v *RecordingView) Percents() []int {
	var percents []int
	for _, s := range v.States {
		if s.Phase == model.PhaseUploading && s.Percent > 0 {
			percents = append(percents, s.Percent)
		}
	}
	return percents
}
