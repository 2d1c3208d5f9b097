// Package memory provides an in-memory entity store used for development and
// tests. Data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/store"
)

// Store implements store.EntityStore using a mutex-guarded map. The
// uniqueness key is checked and claimed under the same lock as the insert,
// so concurrent creates with the same key cannot both succeed.
type Store[T any, PT store.Record[T]] struct {
	mu sync.RWMutex

	records map[uuid.UUID]*T
	keys    map[string]uuid.UUID // uniqueness key -> record id
}

// New creates an empty in-memory store for one entity type.
func New[T any, PT store.Record[T]]() *Store[T, PT] {
	return &Store[T, PT]{
		records: make(map[uuid.UUID]*T),
		keys:    make(map[string]uuid.UUID),
	}
}

// List returns the records matching the filter, newest first.
func (s *Store[T, PT]) List(ctx context.Context, filter store.Filter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*T
	for _, rec := range s.records {
		if filter.OrganizationID != "" && PT(rec).Scope() != filter.OrganizationID {
			continue
		}
		// Clone to avoid external modifications
		clone := *rec
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool {
		ci, _ := PT(result[i]).Stamped()
		cj, _ := PT(result[j]).Stamped()
		return ci.After(cj)
	})

	return result, nil
}

// Get retrieves a record by identifier.
func (s *Store[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return nil, store.ErrNotFound
	}

	clone := *rec
	return &clone, nil
}

// Create persists a transient record, claiming its uniqueness key.
func (s *Store[T, PT]) Create(ctx context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := PT(rec)

	if _, exists := s.records[r.RecordID()]; exists {
		return store.ErrAlreadyExists
	}

	if key := r.Key(); key != "" {
		if _, taken := s.keys[key]; taken {
			return store.ErrAlreadyExists
		}
		s.keys[key] = r.RecordID()
	}

	now := time.Now().UTC()
	r.Stamp(now, now)

	clone := *rec
	s.records[r.RecordID()] = &clone

	return nil
}

// Update replaces the stored record's fields. The stored creation timestamp
// survives whatever the caller supplied.
func (s *Store[T, PT]) Update(ctx context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := PT(rec)

	current, exists := s.records[r.RecordID()]
	if !exists {
		return store.ErrNotFound
	}
	cur := PT(current)

	if key := r.Key(); key != cur.Key() {
		if owner, taken := s.keys[key]; taken && owner != r.RecordID() {
			return store.ErrAlreadyExists
		}
		delete(s.keys, cur.Key())
		if key != "" {
			s.keys[key] = r.RecordID()
		}
	}

	created, _ := cur.Stamped()
	r.Stamp(created, time.Now().UTC())

	clone := *rec
	s.records[r.RecordID()] = &clone

	return nil
}

// Delete removes a record and releases its uniqueness key.
func (s *Store[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		return store.ErrNotFound
	}

	if key := PT(rec).Key(); key != "" {
		delete(s.keys, key)
	}
	delete(s.records, id)

	return nil
}
