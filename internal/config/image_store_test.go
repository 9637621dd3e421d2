package config

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, quota int) *ImageStore {
	t.Helper()
	app := test.NewApp()
	store := NewImageStore(app.Preferences(), func() int { return quota })
	store.now = func() time.Time {
		return time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.FixedZone("EEST", 3*3600))
	}
	return store
}

func TestImageStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t, DefaultStorageQuotaBytes)

	require.NoError(t, store.Save("data:image/png;base64,AAAA"))

	img, ok := store.Load()
	require.True(t, ok, "saved image should load")
	assert.Equal(t, "data:image/png;base64,AAAA", img.DataURI)
	assert.Equal(t, "2024-05-06T04:08:09.123Z", img.SavedAtISO, "timestamp is UTC with milliseconds")

	savedAt, err := img.SavedAt()
	require.NoError(t, err)
	assert.True(t, savedAt.Equal(store.now()), "expected %v, got %v", store.now(), savedAt)
}

func TestImageStore_SaveReplaces(t *testing.T) {
	store := newTestStore(t, DefaultStorageQuotaBytes)

	require.NoError(t, store.Save("data:image/png;base64,first"))
	require.NoError(t, store.Save("data:image/gif;base64,second"))

	img, _ := store.Load()
	assert.Equal(t, "data:image/gif;base64,second", img.DataURI)
}

func TestImageStore_QuotaExceeded(t *testing.T) {
	store := newTestStore(t, 64)
	require.NoError(t, store.Save("data:image/png;base64,small"))

	err := store.Save("data:image/png;base64," + strings.Repeat("A", 64))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	img, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,small", img.DataURI, "failed save keeps the previous image")
}

func TestImageStore_Unavailable(t *testing.T) {
	store := NewImageStore(nil, nil)

	assert.ErrorIs(t, store.Save("data:image/png;base64,AAAA"), ErrStoreUnavailable)

	_, ok := store.Load()
	assert.False(t, ok)
	assert.NotPanics(t, store.Clear)
}

func TestImageStore_LoadRequiresBothKeys(t *testing.T) {
	tests := []struct {
		name      string
		image     string
		timestamp string
	}{
		{"nothing saved", "", ""},
		{"image only", "data:image/png;base64,AAAA", ""},
		{"timestamp only", "", "2024-05-06T04:08:09.123Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			prefs := app.Preferences()
			if tt.image != "" {
				prefs.SetString(KeyUploadedImage, tt.image)
			}
			if tt.timestamp != "" {
				prefs.SetString(KeyUploadTimestamp, tt.timestamp)
			}

			_, ok := NewImageStore(prefs, nil).Load()
			assert.False(t, ok)
		})
	}
}

func TestImageStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t, DefaultStorageQuotaBytes)
	require.NoError(t, store.Save("data:image/png;base64,AAAA"))

	store.Clear()
	store.Clear()

	_, ok := store.Load()
	assert.False(t, ok)
	assert.Empty(t, store.prefs.String(KeyUploadTimestamp))
	assert.Empty(t, store.prefs.String(KeyUploadedImage))
}
