// Package memory provides the in-memory record stores backing the
// prototype. There is no persistence: stores are seeded from fixtures
// at startup and live for the process lifetime.
package memory

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
)

// Store holds records of one kind keyed by id, preserving insertion
// order for iteration. A record's id is fixed at insert; Update rejects
// mutations that would change it.
//
// Reads and writes are serialized with an RWMutex. The UI layer is
// single threaded, but chat reply timers fire on background goroutines
// and write through the same stores.
type Store[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
	key     func(T) string
}

// NewStore creates an empty store. key extracts the identifier used for
// lookups; it must be stable for the lifetime of a record.
func NewStore[T any](key func(T) string) *Store[T] {
	return &Store[T]{
		records: make(map[string]T),
		key:     key,
	}
}

// Put inserts or replaces a record. A replaced record keeps its
// original position in iteration order.
func (s *Store[T]) Put(ctx context.Context, record T) {
	id := s.key(record)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}
	s.records[id] = record
}

// Get returns the record with the given id, or entity.ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}
	return record, nil
}

// Update applies mutate to the record with the given id atomically and
// returns the updated record. If the record is absent the store is
// untouched and entity.ErrNotFound is returned. A mutation that changes
// the record's id is rejected wholesale.
func (s *Store[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%w: id %q", entity.ErrNotFound, id)
	}

	updated := record
	mutate(&updated)
	if s.key(updated) != id {
		var zero T
		return zero, fmt.Errorf("record id is immutable: %q", id)
	}

	s.records[id] = updated
	return updated, nil
}

// All returns a lazy, restartable, insertion-ordered view over the
// store. Each iteration reads the current state; callers that need a
// point-in-time view should use Snapshot.
func (s *Store[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.mu.RLock()
		order := make([]string, len(s.order))
		copy(order, s.order)
		s.mu.RUnlock()

		for _, id := range order {
			s.mu.RLock()
			record, exists := s.records[id]
			s.mu.RUnlock()
			if !exists {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}

// Snapshot returns an insertion-ordered copy of all records.
func (s *Store[T]) Snapshot(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of records in the store.
func (s *Store[T]) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
