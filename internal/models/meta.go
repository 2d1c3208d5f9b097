package models

import (
	"time"

	"github.com/google/uuid"
)

// Meta carries the fields shared by every persisted record: the identifier,
// generated once at construction time, and the two timestamps owned by the
// store. Application code never writes the timestamps directly.
type Meta struct {
	ID        uuid.UUID // UUIDv7
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewID generates a fresh UUIDv7 record identifier.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// RecordID returns the record identifier.
func (m *Meta) RecordID() uuid.UUID { return m.ID }

// Stamp sets both timestamps. Called by the store only.
func (m *Meta) Stamp(created, updated time.Time) {
	m.CreatedAt = created
	m.UpdatedAt = updated
}

// Stamped returns the creation and last-update timestamps.
func (m *Meta) Stamped() (created, updated time.Time) {
	return m.CreatedAt, m.UpdatedAt
}
