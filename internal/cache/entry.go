package cache

import (
	"encoding/json"
	"errors"
	"time"
)

// Entry is one cached payload with its expiry.
type Entry struct {
	// Key is the cache key the entry was stored under.
	Key string `json:"key"`

	// Data is the cached payload.
	Data json.RawMessage `json:"data"`

	// CreatedAt is when the entry was written.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the entry stops being served.
	ExpiresAt time.Time `json:"expires_at"`

	// TTLSeconds is the TTL the entry was written with.
	TTLSeconds int `json:"ttl_seconds"`
}

// NewEntry creates an entry expiring ttlSeconds from now.
func NewEntry(key string, data json.RawMessage, ttlSeconds int) *Entry {
	now := time.Now()
	return &Entry{
		Key:        key,
		Data:       data,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// IsExpired reports whether the entry is past its expiry.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Age returns how long ago the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}

// TimeUntilExpiration returns the remaining lifetime, or 0 once expired.
func (e *Entry) TimeUntilExpiration() time.Duration {
	if remaining := time.Until(e.ExpiresAt); remaining > 0 {
		return remaining
	}
	return 0
}

// entryJSON is the on-disk shape: timestamps as RFC3339 strings.
type entryJSON struct {
	Key        string          `json:"key"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  string          `json:"created_at"`
	ExpiresAt  string          `json:"expires_at"`
	TTLSeconds int             `json:"ttl_seconds"`
}

// MarshalJSON writes timestamps as RFC3339 for readable cache files.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Key:        e.Key,
		Data:       e.Data,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		ExpiresAt:  e.ExpiresAt.Format(time.RFC3339),
		TTLSeconds: e.TTLSeconds,
	})
}

// UnmarshalJSON parses the RFC3339 timestamps written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil Entry")
	}

	var aux entryJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	created, err := time.Parse(time.RFC3339, aux.CreatedAt)
	if err != nil {
		return err
	}
	expires, err := time.Parse(time.RFC3339, aux.ExpiresAt)
	if err != nil {
		return err
	}

	*e = Entry{
		Key:        aux.Key,
		Data:       aux.Data,
		CreatedAt:  created,
		ExpiresAt:  expires,
		TTLSeconds: aux.TTLSeconds,
	}
	return nil
}
