package testutil

import (
	"sync"

	"github.com/ytget/image-drop/internal/model"
)

// MemoryStore keeps the persisted image in memory
type MemoryStore struct {
	mu      sync.Mutex
	image   model.PersistedImage
	present bool

	// SaveErr, when set, is returned by Save and nothing is stored
	SaveErr error

	Saves  int
	Clears int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores dataURI with a fixed timestamp
func (m *MemoryStore) Save(dataURI string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.image = model.PersistedImage{DataURI: dataURI, SavedAtISO: "2024-01-02T03:04:05.000Z"}
	m.present = true
	return nil
}

// Load returns the stored image
func (m *MemoryStore) Load() (model.PersistedImage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.image, m.present
}

// Clear removes the stored image
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Clears++
	m.image = model.PersistedImage{}
	m.present = false
}

// Put seeds the store as if an earlier session saved img
func (m *MemoryStore) Put(img model.PersistedImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.image = img
	m.present = true
}
