// Package configstore provides the typed, string-keyed configuration
// map the embedding server shares with the host. Lookups distinguish a
// missing key from a value of the wrong type.
package configstore

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/plugforge/plughost/json"
)

// ErrKeyMissing is returned when a key has no value at all.
var ErrKeyMissing = errors.New("config key does not exist")

// WrongTypeError is returned when a key exists but holds a value of a
// different type than requested.
type WrongTypeError struct {
	Key  string
	Want string
	Got  string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("config key %q is %s, want %s", e.Key, e.Got, e.Want)
}

// Store is a thread-safe typed key-value map.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]any)}
}

// Exists reports whether the key holds a value of any type.
func (s *Store) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Set stores a value under the key, replacing any previous value
// regardless of its type.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Remove deletes the key and reports whether it existed.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Keys returns all keys, sorted alphabetically.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bind decodes the whole store into a struct via its json tags,
// applying `default:` tags for keys the store does not hold. target
// must be a pointer to a struct.
func (s *Store) Bind(target any) error {
	s.mu.RLock()
	snapshot := make(map[string]any, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	s.mu.RUnlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return json.UnmarshalWithDefaults(data, target)
}

// Get retrieves the key's value as T. A missing key fails with
// ErrKeyMissing; a value of another type fails with WrongTypeError.
func Get[T any](s *Store, key string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	v, ok := s.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyMissing, key)
	}

	typed, ok := v.(T)
	if !ok {
		return zero, &WrongTypeError{Key: key, Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", v)}
	}
	return typed, nil
}

// Is reports whether the key exists and holds a value of type T.
func Is[T any](s *Store, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return false
	}
	_, ok = v.(T)
	return ok
}
