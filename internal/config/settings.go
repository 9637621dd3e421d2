package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage          = "app_language"
	KeyRestoreOnStartup  = "restore_on_startup"
	KeyStorageQuotaBytes = "storage_quota_bytes"
)

// Default values
const (
	DefaultLanguage          = "system"
	DefaultRestoreOnStartup  = true
	DefaultStorageQuotaBytes = 10 * 1024 * 1024
)

// Quota bounds accepted by SetStorageQuota
const (
	MinStorageQuotaBytes = 1024 * 1024
	MaxStorageQuotaBytes = 64 * 1024 * 1024
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRestoreOnStartup returns whether the last saved image is shown at launch
func (s *Settings) GetRestoreOnStartup() bool {
	return s.app.Preferences().BoolWithFallback(KeyRestoreOnStartup, DefaultRestoreOnStartup)
}

// SetRestoreOnStartup sets whether the last saved image is shown at launch
func (s *Settings) SetRestoreOnStartup(restore bool) {
	s.app.Preferences().SetBool(KeyRestoreOnStartup, restore)
}

// GetStorageQuota returns the largest data URI the image store accepts
func (s *Settings) GetStorageQuota() int {
	value := s.app.Preferences().Int(KeyStorageQuotaBytes)
	if value <= 0 {
		s.SetStorageQuota(DefaultStorageQuotaBytes)
		return DefaultStorageQuotaBytes
	}
	return value
}

// SetStorageQuota sets the storage quota, clamped to the supported range
func (s *Settings) SetStorageQuota(bytes int) {
	if bytes < MinStorageQuotaBytes {
		bytes = MinStorageQuotaBytes
	}
	if bytes > MaxStorageQuotaBytes {
		bytes = MaxStorageQuotaBytes
	}
	s.app.Preferences().SetInt(KeyStorageQuotaBytes, bytes)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
