package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors shared by every entity store
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Record is implemented by pointers to entity records. It gives the generic
// stores access to the identifier, the uniqueness key, the organization scope
// and the store-owned timestamps.
type Record[T any] interface {
	*T

	RecordID() uuid.UUID

	// Key returns the value of the record's uniqueness key. Two records of
	// the same entity may never share a non-empty key.
	Key() string

	// Scope returns the organization the record belongs to, or "" when the
	// entity is not organization-scoped.
	Scope() string

	Stamp(created, updated time.Time)
	Stamped() (created, updated time.Time)
}

// Filter narrows List results. The zero value matches everything.
type Filter struct {
	// OrganizationID restricts results to one organization. Ignored for
	// entities without an organization scope.
	OrganizationID string
}

// EntityStore is the persistence contract every entity lifecycle runs
// against. Implementations enforce the uniqueness key atomically inside
// Create and Update, so callers never need a separate existence pre-check.
type EntityStore[T any, PT Record[T]] interface {
	// List returns the records matching the filter, newest first.
	// An empty result is not an error.
	List(ctx context.Context, filter Filter) ([]*T, error)

	// Get retrieves a record by identifier.
	// Returns ErrNotFound if no record matches.
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// Create persists a transient record and stamps its timestamps.
	// Returns ErrAlreadyExists if the identifier or the uniqueness key is
	// already taken.
	Create(ctx context.Context, rec *T) error

	// Update persists new field values for an existing record. The stored
	// creation timestamp is preserved and the update timestamp refreshed,
	// whatever the caller supplied. Returns ErrNotFound if the record does
	// not exist and ErrAlreadyExists on a uniqueness-key conflict.
	Update(ctx context.Context, rec *T) error

	// Delete removes a record by identifier.
	// Returns ErrNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
