package session

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// sessions kept on Memcached expire after a week, like the token
const sessionExpiration = 7 * 24 * 3600

// MemcachedStorage permits to keep session values on a Memcached
// instance, so several local clients share one signed-in session
type MemcachedStorage struct {
	mem *memcache.Client
}

// NewMemcachedStorage creates the storage from a host:port address
func NewMemcachedStorage(address string) *MemcachedStorage {
	return &MemcachedStorage{mem: memcache.New(address)}
}

func (s *MemcachedStorage) Get(key string) (string, error) {
	item, err := s.mem.Get(key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			return "", ErrNoValue
		}
		return "", err
	}

	return string(item.Value), nil
}

func (s *MemcachedStorage) Set(key string, value string) error {
	return s.mem.Set(&memcache.Item{
		Key:        key,
		Value:      []byte(value),
		Expiration: sessionExpiration,
	})
}

func (s *MemcachedStorage) Delete(key string) error {
	err := s.mem.Delete(key)
	if err == memcache.ErrCacheMiss {
		return nil
	}
	return err
}
