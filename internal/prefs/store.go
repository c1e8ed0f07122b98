// Package prefs persists theme preferences as string key-value entries.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	prefserr "github.com/kyleking/lazytheme/internal/errors"
)

// Persisted keys.
const (
	KeyTheme       = "theme"
	KeyAccent      = "accent"
	KeyThemeSource = "theme-source"
)

// Values stored under KeyThemeSource.
const (
	SourceUser   = "user"
	SourceSystem = "system"
)

// Store is durable string key-value storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Path returns the path to the preferences file.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lazytheme", "preferences.json")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "lazytheme", "preferences.json")
}

// FileStore keeps entries in memory and rewrites the JSON file on every change.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// Load reads the store from the default location.
func Load() (*FileStore, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the store from a specific path, returning an empty store if
// the file does not exist.
func LoadFrom(path string) (*FileStore, error) {
	s := &FileStore{path: path, entries: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, &prefserr.StorageError{Op: "load", Path: path, Err: err}
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, &prefserr.StorageError{Op: "load", Path: path, Err: err}
	}

	if s.entries == nil {
		s.entries = make(map[string]string)
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]

	return v, ok
}

// Set stores value under key and writes the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value

	if err := s.save(); err != nil {
		return &prefserr.StorageError{Op: "save", Key: key, Path: s.path, Err: err}
	}

	return nil
}

// Delete removes key and writes the file. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}

	delete(s.entries, key)

	if err := s.save(); err != nil {
		return &prefserr.StorageError{Op: "delete", Key: key, Path: s.path, Err: err}
	}

	return nil
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.entries)
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]

	return v, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()

	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	return nil
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.entries)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
