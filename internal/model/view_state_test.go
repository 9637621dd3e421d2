package model

import (
	"testing"
	"time"
)

func TestUIState_VisibleIndicators(t *testing.T) {
	tests := []struct {
		name     string
		state    UIState
		expected int
	}{
		{"idle", UIState{}, 0},
		{"loading", UIState{Phase: PhaseValidating, Loading: true}, 1},
		{"error", UIState{Phase: PhaseError, ErrorMessage: "boom"}, 1},
		{"success", UIState{Phase: PhaseSuccessFlash, SuccessVisible: true, PreviewVisible: true}, 1},
		{"broken", UIState{Loading: true, SuccessVisible: true}, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.state.VisibleIndicators(); got != test.expected {
				t.Errorf("VisibleIndicators() = %d, expected %d", got, test.expected)
			}
		})
	}
}

func TestPersistedImage_SavedAt(t *testing.T) {
	img := PersistedImage{DataURI: "data:image/png;base64,AA==", SavedAtISO: "2024-03-05T14:07:09.123Z"}

	ts, err := img.SavedAt()
	if err != nil {
		t.Fatalf("Expected timestamp to parse, got %v", err)
	}

	expected := time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.UTC)
	if !ts.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, ts)
	}

	img.SavedAtISO = "yesterday"
	if _, err := img.SavedAt(); err == nil {
		t.Error("Expected error for malformed timestamp")
	}
}

func TestFileDescriptor_Subtype(t *testing.T) {
	tests := []struct {
		mime     string
		expected string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpeg"},
		{"text", ""},
		{"", ""},
	}

	for _, test := range tests {
		fd := FileDescriptor{MimeType: test.mime}
		if got := fd.Subtype(); got != test.expected {
			t.Errorf("Subtype() for %q = %q, expected %q", test.mime, got, test.expected)
		}
	}
}

func TestFileDescriptor_OpenWithoutSource(t *testing.T) {
	fd := FileDescriptor{Name: "empty.png"}
	if _, err := fd.Open(); err != ErrNoContent {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}
}
