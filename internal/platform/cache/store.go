package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/platform/resilience"
)

// Store is an in-process TTL cache. Concurrent loads for the same key are
// collapsed into a single loader call; failed loads are never cached.
type Store struct {
	mu      sync.RWMutex
	byKey   map[string]entry
	ttl     time.Duration
	loading resilience.SingleFlight
}

type entry struct {
	value   any
	staleAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		byKey: make(map[string]entry),
		ttl:   ttl,
	}
}

// GetOrLoad returns the cached value for key, invoking loader on a miss and
// caching its result. An empty key bypasses the cache entirely.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if v, ok := s.lookup(key); ok {
		return v, nil
	}

	return s.loading.Do(key, func() (any, error) {
		if v, ok := s.lookup(key); ok {
			return v, nil
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.put(key, loaded)
		return loaded, nil
	})
}

// DeletePrefix drops every entry whose key starts with prefix.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.byKey {
		if strings.HasPrefix(key, prefix) {
			delete(s.byKey, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.byKey[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.ttl > 0 && !time.Now().Before(e.staleAt) {
		s.mu.Lock()
		delete(s.byKey, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) put(key string, value any) {
	e := entry{value: value}
	if s.ttl > 0 {
		e.staleAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.byKey[key] = e
	s.mu.Unlock()
}
