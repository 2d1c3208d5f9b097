package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/craftline/backoffice/internal/store"
)

func TestMapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, mapError(nil))
	})

	t.Run("non-postgres error passes through", func(t *testing.T) {
		err := errors.New("boom")
		require.Equal(t, err, mapError(err))
	})

	t.Run("unique violation maps to already exists", func(t *testing.T) {
		err := &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "idx_clients_name",
		}

		mapped := mapError(err)
		require.ErrorIs(t, mapped, store.ErrAlreadyExists)
		require.Contains(t, mapped.Error(), "idx_clients_name")
	})

	t.Run("wrapped unique violation maps to already exists", func(t *testing.T) {
		err := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
		require.ErrorIs(t, mapError(err), store.ErrAlreadyExists)
	})

	t.Run("connection failure keeps the cause", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

		mapped := mapError(cause)
		require.NotErrorIs(t, mapped, store.ErrAlreadyExists)
		require.ErrorIs(t, mapped, cause)
	})

	t.Run("unknown code keeps the cause", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: "missing"}

		mapped := mapError(cause)
		require.ErrorIs(t, mapped, cause)
		require.Contains(t, mapped.Error(), "missing")
	})
}
