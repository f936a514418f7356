// Package memo is the seam between the resolver and whatever incremental
// computation framework hosts it. The resolver only ever sees the Store
// interface: ask for a key, get back a stable value. How values are
// invalidated, which dependencies get recorded while computing them, and
// where they actually live is the framework's business, not the resolver's.
package memo

import (
	"context"
	"sync"
)

// Func computes the value for a key. It runs at most once per live cache
// entry and must be deterministic for the key: Store implementations are
// allowed to hand out its result forever.
type Func func(ctx context.Context) (interface{}, error)

// Store memoizes keyed computations. Get returns the cached value for the
// key, computing it first if needed. Repeated gets with the same key observe
// a stable value; concurrent gets for the same key share one computation.
//
// Keys must be comparable and must include everything the computation
// depends on (e.g. the identity of the map being queried plus the request
// string), exactly like a cache key anywhere else.
type Store interface {
	Get(ctx context.Context, key interface{}, compute Func) (interface{}, error)
	Invalidate(key interface{})
}

type mapEntry struct {
	done  chan struct{}
	value interface{}
	err   error
}

// A MapStore is the in-process Store: a mutex-guarded map of completed and
// in-flight computations. It never evicts; callers that need invalidation
// drive it through Invalidate.
type MapStore struct {
	mutex   sync.Mutex
	entries map[interface{}]*mapEntry
}

func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[interface{}]*mapEntry)}
}

func (s *MapStore) Get(ctx context.Context, key interface{}, compute Func) (interface{}, error) {
	s.mutex.Lock()
	if entry, ok := s.entries[key]; ok {
		s.mutex.Unlock()
		select {
		case <-entry.done:
			return entry.value, entry.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	entry := &mapEntry{done: make(chan struct{})}
	s.entries[key] = entry
	s.mutex.Unlock()

	entry.value, entry.err = compute(ctx)

	// A failed computation is not cached. The error is still reported to
	// every waiter that piled up on this entry, but the next Get retries.
	if entry.err != nil {
		s.mutex.Lock()
		if s.entries[key] == entry {
			delete(s.entries, key)
		}
		s.mutex.Unlock()
	}
	close(entry.done)
	return entry.value, entry.err
}

func (s *MapStore) Invalidate(key interface{}) {
	s.mutex.Lock()
	delete(s.entries, key)
	s.mutex.Unlock()
}
