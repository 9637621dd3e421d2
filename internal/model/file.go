package model

import (
	"errors"
	"io"
	"strings"
)

// ErrNoContent is returned by FileDescriptor.Open when no byte source is attached
var ErrNoContent = errors.New("file has no content source")

// FileDescriptor describes a file picked or dropped by the user. It is owned by
// the handling run that received it and dropped once that run is over.
type FileDescriptor struct {
	Name      string
	MimeType  string
	SizeBytes int64

	// Source opens the raw bytes; it may be called more than once
	Source func() (io.ReadCloser, error)
}

// Open returns a reader over the file bytes
func (fd FileDescriptor) Open() (io.ReadCloser, error) {
	if fd.Source == nil {
		return nil, ErrNoContent
	}
	return fd.Source()
}

// Subtype returns the part of the MIME type after the slash ("png" for image/png)
func (fd FileDescriptor) Subtype() string {
	_, sub, found := strings.Cut(fd.MimeType, "/")
	if !found {
		return ""
	}
	return sub
}

// ReasonCode tells why a file was accepted or rejected
type ReasonCode int

const (
	ReasonOK ReasonCode = iota
	ReasonBadType
	ReasonTooLarge
)

// String returns the reason name used in logs
func (rc ReasonCode) String() string {
	switch rc {
	case ReasonOK:
		return "OK"
	case ReasonBadType:
		return "BAD_TYPE"
	case ReasonTooLarge:
		return "TOO_LARGE"
	default:
		return "UNKNOWN"
	}
}

// ValidationResult is the outcome of validating a FileDescriptor
type ValidationResult struct {
	Accepted bool
	Reason   ReasonCode
}
