package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-drop/internal/model"
)

// Preference keys holding the persisted image
const (
	KeyUploadedImage   = "uploadedImage"
	KeyUploadTimestamp = "uploadTimestamp"
)

// Errors
var (
	ErrQuotaExceeded    = errors.New("storage quota exceeded")
	ErrStoreUnavailable = errors.New("storage unavailable")
)

// ImageStore keeps the most recent upload in Fyne preferences
type ImageStore struct {
	prefs fyne.Preferences
	quota func() int
	now   func() time.Time
}

// NewImageStore creates a store over prefs. quota is consulted on every Save;
// nil means DefaultStorageQuotaBytes.
func NewImageStore(prefs fyne.Preferences, quota func() int) *ImageStore {
	if quota == nil {
		quota = func() int { return DefaultStorageQuotaBytes }
	}
	return &ImageStore{
		prefs: prefs,
		quota: quota,
		now:   time.Now,
	}
}

// Save writes dataURI and the current UTC time, replacing any previous image
func (s *ImageStore) Save(dataURI string) error {
	if s.prefs == nil {
		return ErrStoreUnavailable
	}
	if limit := s.quota(); len(dataURI) > limit {
		return fmt.Errorf("%w: %d bytes over limit of %d", ErrQuotaExceeded, len(dataURI)-limit, limit)
	}

	s.prefs.SetString(KeyUploadedImage, dataURI)
	s.prefs.SetString(KeyUploadTimestamp, s.now().UTC().Format(model.TimestampLayout))
	log.Printf("Persisted image (%d bytes)", len(dataURI))
	return nil
}

// Load returns the saved image. Both entries must be present.
func (s *ImageStore) Load() (model.PersistedImage, bool) {
	if s.prefs == nil {
		return model.PersistedImage{}, false
	}

	dataURI := s.prefs.String(KeyUploadedImage)
	savedAt := s.prefs.String(KeyUploadTimestamp)
	if dataURI == "" || savedAt == "" {
		return model.PersistedImage{}, false
	}
	return model.PersistedImage{DataURI: dataURI, SavedAtISO: savedAt}, true
}

// Clear removes both entries
func (s *ImageStore) Clear() {
	if s.prefs == nil {
		return
	}
	s.prefs.RemoveValue(KeyUploadedImage)
	s.prefs.RemoveValue(KeyUploadTimestamp)
}
