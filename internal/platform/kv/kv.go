package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when no value is stored under the requested key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable key-value store holding serialized application state.
// Implementations must be safe for concurrent use.
type Store interface {
	// Read returns the value stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) (string, error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// LoadJSON reads key and unmarshals it into dst. A missing key or a
// corrupt payload both report false with a nil error, leaving dst
// untouched, so callers fall back to their defaults instead of failing
// on foreign or damaged data. Only backend errors are returned.
func LoadJSON(ctx context.Context, s Store, key string, dst interface{}) (bool, error) {
	raw, err := s.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if json.Unmarshal([]byte(raw), dst) != nil {
		return false, nil
	}
	return true, nil
}

// SaveJSON marshals v and writes it under key.
func SaveJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, string(data))
}
