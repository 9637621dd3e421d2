package upload

import (
	"errors"
	"testing"

	"github.com/ytget/image-drop/internal/model"
)

func TestValidate_RejectsBadTypeRegardlessOfSize(t *testing.T) {
	types := []string{"", "image/webp", "image/bmp", "text/plain", "application/pdf", "IMAGE/PNG", "image/jpg"}
	sizes := []int64{0, 1, MaxFileSize, MaxFileSize + 1, 100 * 1024 * 1024}

	for _, mimeType := range types {
		for _, size := range sizes {
			result := Validate(model.FileDescriptor{Name: "f", MimeType: mimeType, SizeBytes: size})
			if result.Accepted {
				t.Errorf("Validate(%q, %d) accepted, expected rejection", mimeType, size)
			}
			if result.Reason != model.ReasonBadType {
				t.Errorf("Validate(%q, %d) reason = %s, expected BAD_TYPE", mimeType, size, result.Reason)
			}
		}
	}
}

func TestValidate_AllowedTypes(t *testing.T) {
	tests := []struct {
		size     int64
		accepted bool
		reason   model.ReasonCode
	}{
		{0, true, model.ReasonOK},
		{1024, true, model.ReasonOK},
		{5242880, true, model.ReasonOK},
		{5242881, false, model.ReasonTooLarge},
		{10 * 1024 * 1024, false, model.ReasonTooLarge},
	}

	for _, mimeType := range []string{"image/jpeg", "image/png", "image/gif"} {
		for _, test := range tests {
			result := Validate(model.FileDescriptor{Name: "f", MimeType: mimeType, SizeBytes: test.size})
			if result.Accepted != test.accepted || result.Reason != test.reason {
				t.Errorf("Validate(%s, %d) = %+v, expected accepted=%v reason=%s",
					mimeType, test.size, result, test.accepted, test.reason)
			}
		}
	}
}

func TestMaxFileSize(t *testing.T) {
	if MaxFileSize != 5242880 {
		t.Errorf("Expected MaxFileSize 5242880, got %d", MaxFileSize)
	}
}

func TestResultError(t *testing.T) {
	if err := ResultError(model.ValidationResult{Accepted: true, Reason: model.ReasonOK}); err != nil {
		t.Errorf("Expected nil error for accepted result, got %v", err)
	}
	if err := ResultError(model.ValidationResult{Reason: model.ReasonBadType}); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Expected ErrInvalidType, got %v", err)
	}
	if err := ResultError(model.ValidationResult{Reason: model.ReasonTooLarge}); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Expected ErrFileTooLarge, got %v", err)
	}
}
