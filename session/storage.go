package session

import (
	"errors"
	"sync"
)

// ErrNoValue is returned when a key has nothing stored under it
var ErrNoValue = errors.New("no value stored")

// Storage is the local key-value store holding session values
// between runs, like a browser localStorage.
type Storage interface {
	Get(key string) (string, error)
	Set(key string, value string) error
	Delete(key string) error
}

// memoryStorage keeps values for the process lifetime only
type memoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an in-process storage, used when no
// shared storage is configured
func NewMemoryStorage() Storage {
	return &memoryStorage{values: make(map[string]string)}
}

func (s *memoryStorage) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrNoValue
	}
	return value, nil
}

func (s *memoryStorage) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *memoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
