// Package postgres provides the PostgreSQL-backed entity stores. All stores
// share one pgx connection pool and one table-driven implementation.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/craftline/backoffice/internal/store"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// table describes how one entity maps onto its table: the column list in
// insert order (identifier first, store-owned timestamps excluded), the
// argument extractor aligned with that list, and the row scanner.
type table[T any] struct {
	name      string
	orgColumn string // "" when the entity is not organization-scoped
	columns   []string
	args      func(rec *T) []any
	scan      func(row rowScanner) (*T, error)
}

// EntityStore implements store.EntityStore for one entity table.
// Uniqueness keys are enforced by the unique indexes created in the schema
// migration; violations surface as store.ErrAlreadyExists.
type EntityStore[T any, PT store.Record[T]] struct {
	pool *pgxpool.Pool
	tbl  table[T]

	selectSQL string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
}

func newEntityStore[T any, PT store.Record[T]](pool *pgxpool.Pool, tbl table[T]) *EntityStore[T, PT] {
	s := &EntityStore[T, PT]{pool: pool, tbl: tbl}

	all := append(append([]string{}, tbl.columns...), "created_at", "updated_at")

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// columns[0] is the identifier and keyed by the WHERE clause on update.
	sets := make([]string, 0, len(tbl.columns))
	for i, col := range tbl.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(tbl.columns)+1))

	s.selectSQL = "SELECT " + strings.Join(all, ", ") + " FROM " + tbl.name
	s.getSQL = s.selectSQL + " WHERE id = $1"
	s.insertSQL = "INSERT INTO " + tbl.name + " (" + strings.Join(all, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	s.updateSQL = "UPDATE " + tbl.name + " SET " + strings.Join(sets, ", ") + " WHERE id = $1 RETURNING created_at"
	s.deleteSQL = "DELETE FROM " + tbl.name + " WHERE id = $1"

	return s
}

// List returns the records matching the filter, newest first.
func (s *EntityStore[T, PT]) List(ctx context.Context, filter store.Filter) ([]*T, error) {
	query := s.selectSQL
	var args []any
	if filter.OrganizationID != "" && s.tbl.orgColumn != "" {
		query += " WHERE " + s.tbl.orgColumn + " = $1"
		args = append(args, filter.OrganizationID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.tbl.name, mapError(err))
	}
	defer rows.Close()

	var recs []*T
	for rows.Next() {
		rec, err := s.tbl.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.tbl.name, err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", s.tbl.name, mapError(err))
	}

	return recs, nil
}

// Get retrieves a record by identifier.
func (s *EntityStore[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := s.tbl.scan(s.pool.QueryRow(ctx, s.getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.tbl.name, mapError(err))
	}

	return rec, nil
}

// Create inserts a transient record, stamping both timestamps.
func (s *EntityStore[T, PT]) Create(ctx context.Context, rec *T) error {
	now := time.Now().UTC()
	PT(rec).Stamp(now, now)

	args := append(s.tbl.args(rec), now, now)

	if _, err := s.pool.Exec(ctx, s.insertSQL, args...); err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, store.ErrAlreadyExists) {
			return mapped
		}
		return fmt.Errorf("failed to create %s: %w", s.tbl.name, mapped)
	}

	log.Debug().
		Str("id", PT(rec).RecordID().String()).
		Str("table", s.tbl.name).
		Msg("Created record")

	return nil
}

// Update rewrites every mutable column. The stored created_at is untouched
// and read back so the returned record carries the authoritative timestamps.
func (s *EntityStore[T, PT]) Update(ctx context.Context, rec *T) error {
	now := time.Now().UTC()
	args := append(s.tbl.args(rec), now)

	var created time.Time
	if err := s.pool.QueryRow(ctx, s.updateSQL, args...).Scan(&created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		mapped := mapError(err)
		if errors.Is(mapped, store.ErrAlreadyExists) {
			return mapped
		}
		return fmt.Errorf("failed to update %s: %w", s.tbl.name, mapped)
	}

	PT(rec).Stamp(created, now)

	log.Debug().
		Str("id", PT(rec).RecordID().String()).
		Str("table", s.tbl.name).
		Msg("Updated record")

	return nil
}

// Delete removes a record by identifier.
func (s *EntityStore[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, s.deleteSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.tbl.name, mapError(err))
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	log.Debug().
		Str("id", id.String()).
		Str("table", s.tbl.name).
		Msg("Deleted record")

	return nil
}
