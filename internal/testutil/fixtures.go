package testutil

import (
	"errors"

	"github.com/kyleking/lazytheme/internal/prefs"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// StoreWith creates an in-memory store holding entries.
func StoreWith(entries map[string]string) *prefs.MemoryStore {
	store := prefs.NewMemoryStore()
	for k, v := range entries {
		_ = store.Set(k, v)
	}

	return store
}

// DefaultView creates a recording view offering every theme and accent.
func DefaultView() *RecordingView {
	return NewRecordingView(theme.All(), theme.Accents())
}

// ErrWriteFailed is returned by FailingStore writes.
var ErrWriteFailed = errors.New("storage unavailable")

// FailingStore reads from an in-memory store but refuses every write.
type FailingStore struct {
	*prefs.MemoryStore
}

// NewFailingStore creates a FailingStore preloaded with entries.
func NewFailingStore(entries map[string]string) *FailingStore {
	return &FailingStore{MemoryStore: StoreWith(entries)}
}

// Set implements prefs.Store.
func (s *FailingStore) Set(string, string) error { return ErrWriteFailed }

// Delete implements prefs.Store.
func (s *FailingStore) Delete(string) error { return ErrWriteFailed }
