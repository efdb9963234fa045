package codes

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded map. Entries older than ttl are dropped by
// Sweep; callers still compare IssuedAt themselves, so sweeping is only
// about bounding memory.
type MemoryStore[V any] struct {
	mu      sync.Mutex
	entries map[int]Entry[V]
	ttl     time.Duration
}

func NewMemoryStore[V any](ttl time.Duration) *MemoryStore[V] {
	return &MemoryStore[V]{
		entries: make(map[int]Entry[V]),
		ttl:     ttl,
	}
}

func (s *MemoryStore[V]) PutIfAbsent(_ context.Context, code int, v V, issuedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.entries[code]; taken {
		return false, nil
	}
	s.entries[code] = Entry[V]{Value: v, IssuedAt: issuedAt}
	return true, nil
}

func (s *MemoryStore[V]) TryGet(_ context.Context, code int) (Entry[V], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[code]
	return e, ok, nil
}

func (s *MemoryStore[V]) Remove(_ context.Context, code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, code)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Sweep removes entries whose age at now is ttl or more and returns how many
// were removed.
func (s *MemoryStore[V]) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for code, e := range s.entries {
		if e.Expired(now, s.ttl) {
			delete(s.entries, code)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemoryStore[V]) RunSweeper(ctx context.Context, interval time.Duration, now func() time.Time) {
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(now())
		}
	}
}
