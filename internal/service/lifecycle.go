// Package service implements the entity lifecycle shared by every business
// entity: validate the request, persist through the store, and keep store
// failures from leaking to the transport layer.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/craftline/backoffice/internal/store"
)

// ErrInternal replaces any unexpected store failure. The original error is
// logged with the operation name and never surfaced to the caller.
var ErrInternal = errors.New("internal server error")

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Descriptor names one entity type for the lifecycle: the singular entity
// name used in logs and messages, and the field acting as the uniqueness key.
type Descriptor struct {
	Name      string
	UniqueKey string
}

// Lifecycle runs the validate -> persist -> respond pipeline for one entity
// type. Validation always precedes store access; a request that fails
// validation never touches the store.
type Lifecycle[T any, PT store.Record[T]] struct {
	desc Descriptor
	st   store.EntityStore[T, PT]
}

// NewLifecycle creates the lifecycle pipeline for one entity type.
func NewLifecycle[T any, PT store.Record[T]](desc Descriptor, st store.EntityStore[T, PT]) *Lifecycle[T, PT] {
	return &Lifecycle[T, PT]{desc: desc, st: st}
}

// Name returns the singular entity name.
func (l *Lifecycle[T, PT]) Name() string { return l.desc.Name }

// List returns the records matching the filter. An empty result is an empty
// slice, never an error.
func (l *Lifecycle[T, PT]) List(ctx context.Context, filter store.Filter) ([]*T, error) {
	recs, err := l.st.List(ctx, filter)
	if err != nil {
		return nil, l.internal("list", err)
	}
	if recs == nil {
		recs = []*T{}
	}
	return recs, nil
}

// Get fetches one record by identifier.
func (l *Lifecycle[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := l.st.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, l.internal("get", err)
	}
	return rec, nil
}

// Create validates and persists a transient record. The store claims the
// uniqueness key atomically with the insert, so a conflicting concurrent
// create cannot slip past.
func (l *Lifecycle[T, PT]) Create(ctx context.Context, rec *T) (*T, error) {
	if l.desc.UniqueKey != "" && PT(rec).Key() == "" {
		return nil, &ValidationError{Field: l.desc.UniqueKey}
	}

	if err := l.st.Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, err
		}
		return nil, l.internal("create", err)
	}

	return rec, nil
}

// Update validates the record, confirms the target exists, and persists the
// new field values. The stored creation timestamp always survives and the
// update timestamp always advances.
func (l *Lifecycle[T, PT]) Update(ctx context.Context, rec *T) (*T, error) {
	r := PT(rec)

	if r.RecordID() == uuid.Nil {
		return nil, &ValidationError{Field: "id"}
	}
	if l.desc.UniqueKey != "" && r.Key() == "" {
		return nil, &ValidationError{Field: l.desc.UniqueKey}
	}

	if _, err := l.st.Get(ctx, r.RecordID()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, l.internal("update", err)
	}

	if err := l.st.Update(ctx, rec); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAlreadyExists) {
			return nil, err
		}
		return nil, l.internal("update", err)
	}

	return rec, nil
}

// Delete confirms the target exists and removes it.
func (l *Lifecycle[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return &ValidationError{Field: "id"}
	}

	if err := l.st.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return l.internal("delete", err)
	}

	return nil
}

func (l *Lifecycle[T, PT]) internal(op string, err error) error {
	log.Error().
		Err(err).
		Str("entity", l.desc.Name).
		Str("operation", op).
		Msg("store operation failed")

	return ErrInternal
}
