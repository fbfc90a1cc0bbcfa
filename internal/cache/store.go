package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// entryFileExtension is the file extension used for cache entries.
const entryFileExtension = ".json"

// Common cache errors.
var (
	ErrNotFound   = errors.New("cache entry not found")
	ErrExpired    = errors.New("cache entry expired")
	ErrInvalidKey = errors.New("cache key cannot be empty")
	ErrDisabled   = errors.New("cache is disabled")
)

// Store is a directory of JSON cache entries. Safe for concurrent use.
type Store struct {
	directory  string
	enabled    bool
	ttlSeconds int

	mu sync.RWMutex
}

// NewStore opens (and creates) a cache directory. A disabled store accepts
// no writes and reports ErrDisabled from every operation.
func NewStore(directory string, enabled bool, ttlSeconds int) (*Store, error) {
	if !enabled {
		return &Store{}, nil
	}

	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Store{
		directory:  directory,
		enabled:    true,
		ttlSeconds: ttlSeconds,
	}, nil
}

// Get returns the entry stored under key.
// Expired entries are removed and reported as ErrExpired.
func (s *Store) Get(key string) (*Entry, error) {
	if err := s.check(key); err != nil {
		return nil, err
	}

	path := s.pathFor(key)

	s.mu.RLock()
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}

	if entry.IsExpired() {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrExpired
	}

	return &entry, nil
}

// Set stores data under key with the store's TTL, replacing any entry.
// The file is written to a temp path and renamed into place.
func (s *Store) Set(key string, data json.RawMessage) error {
	if err := s.check(key); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(NewEntry(key, data, s.ttlSeconds), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.pathFor(key)
	tmp := path + ".tmp"
	if writeErr := os.WriteFile(tmp, encoded, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tmp, path); renameErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}

	return nil
}

// Delete removes the entry under key. Missing entries are not an error.
func (s *Store) Delete(key string) error {
	if err := s.check(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.pathFor(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every entry and returns how many were removed.
func (s *Store) Clear() (int, error) {
	return s.removeWhere(func(string) bool { return true })
}

// CleanupExpired removes expired entries and returns how many were removed.
// Unreadable files are skipped.
func (s *Store) CleanupExpired() (int, error) {
	return s.removeWhere(func(path string) bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		var entry Entry
		if json.Unmarshal(data, &entry) != nil {
			return false
		}
		return entry.IsExpired()
	})
}

// Stats reports the entry count and total bytes on disk.
func (s *Store) Stats() (int, int64, error) {
	if !s.enabled {
		return 0, 0, ErrDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := s.entryFiles()
	if err != nil {
		return 0, 0, err
	}

	var size int64
	for _, f := range files {
		if info, statErr := os.Stat(f); statErr == nil {
			size += info.Size()
		}
	}
	return len(files), size, nil
}

// IsEnabled reports whether caching is active.
func (s *Store) IsEnabled() bool {
	return s.enabled
}

// Directory returns the cache directory.
func (s *Store) Directory() string {
	return s.directory
}

// TTLSeconds returns the TTL applied to new entries.
func (s *Store) TTLSeconds() int {
	return s.ttlSeconds
}

func (s *Store) check(key string) error {
	if !s.enabled {
		return ErrDisabled
	}
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}

func (s *Store) removeWhere(match func(path string) bool) (int, error) {
	if !s.enabled {
		return 0, ErrDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.entryFiles()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range files {
		if !match(f) {
			continue
		}
		if removeErr := os.Remove(f); removeErr != nil {
			return removed, fmt.Errorf("failed to remove cache file %s: %w", filepath.Base(f), removeErr)
		}
		removed++
	}
	return removed, nil
}

// entryFiles lists cache entry paths. Callers hold mu.
func (s *Store) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	files := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != entryFileExtension {
			continue
		}
		files = append(files, filepath.Join(s.directory, de.Name()))
	}
	return files, nil
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.directory, key+entryFileExtension)
}
