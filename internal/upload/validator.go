package upload

import (
	"errors"

	"github.com/ytget/image-drop/internal/model"
)

// MaxFileSize is 5 mebibytes
const MaxFileSize = 5 * 1024 * 1024

// AllowedTypes lists the accepted image MIME types
var AllowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Errors
var (
	ErrInvalidType  = errors.New("invalid file type, only JPG, PNG and GIF are accepted")
	ErrFileTooLarge = errors.New("file size exceeds 5MB limit")
)

// Validate checks the MIME type first, then the size
func Validate(desc model.FileDescriptor) model.ValidationResult {
	if !AllowedTypes[desc.MimeType] {
		return model.ValidationResult{Accepted: false, Reason: model.ReasonBadType}
	}
	if desc.SizeBytes > MaxFileSize {
		return model.ValidationResult{Accepted: false, Reason: model.ReasonTooLarge}
	}
	return model.ValidationResult{Accepted: true, Reason: model.ReasonOK}
}

// ResultError maps a rejected result to its sentinel error, nil when accepted
func ResultError(result model.ValidationResult) error {
	switch result.Reason {
	case model.ReasonBadType:
		return ErrInvalidType
	case model.ReasonTooLarge:
		return ErrFileTooLarge
	default:
		return nil
	}
}
