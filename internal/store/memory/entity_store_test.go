package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/store"
)

func newClient(name, org string) *models.Client {
	return models.NewClient(models.ClientInput{
		Name:           name,
		OrganizationID: org,
		VAT:            "BE123",
		Email:          "a@acme.com",
	})
}

func TestNew(t *testing.T) {
	st := New[models.Client]()
	require.NotNil(t, st)
}

func TestStore_Create(t *testing.T) {
	t.Run("create stamps timestamps", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.True(t, client.CreatedAt.IsZero())

		err := st.Create(ctx, client)
		require.NoError(t, err)
		require.False(t, client.CreatedAt.IsZero())
		require.Equal(t, client.CreatedAt, client.UpdatedAt)
	})

	t.Run("create duplicate key returns error", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-1")))

		err := st.Create(ctx, newClient("Acme", "org-2"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate create persists nothing", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-1")))
		require.ErrorIs(t, st.Create(ctx, newClient("Acme", "org-2")), store.ErrAlreadyExists)

		all, err := st.List(ctx, store.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}

func TestStore_Get(t *testing.T) {
	t.Run("get existing record", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))

		got, err := st.Get(ctx, client.ID)
		require.NoError(t, err)
		require.Equal(t, client.Name, got.Name)
		require.Equal(t, client.ID, got.ID)
	})

	t.Run("get nonexistent record returns error", func(t *testing.T) {
		st := New[models.Client]()

		_, err := st.Get(context.Background(), models.NewID())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))

		got, err := st.Get(ctx, client.ID)
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := st.Get(ctx, client.ID)
		require.NoError(t, err)
		require.Equal(t, "Acme", again.Name)
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("update refreshes updatedAt and keeps createdAt", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))
		created := client.CreatedAt

		client.Email = "b@acme.com"
		client.CreatedAt = created.AddDate(-1, 0, 0) // caller-supplied value must not win

		require.NoError(t, st.Update(ctx, client))
		require.Equal(t, created, client.CreatedAt)
		require.True(t, client.UpdatedAt.After(created) || client.UpdatedAt.Equal(created))

		got, err := st.Get(ctx, client.ID)
		require.NoError(t, err)
		require.Equal(t, "b@acme.com", got.Email)
		require.Equal(t, created, got.CreatedAt)
	})

	t.Run("update nonexistent record returns error", func(t *testing.T) {
		st := New[models.Client]()

		err := st.Update(context.Background(), newClient("Acme", "org-1"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update to taken key returns error", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-1")))
		other := newClient("Globex", "org-1")
		require.NoError(t, st.Create(ctx, other))

		other.Name = "Acme"
		require.ErrorIs(t, st.Update(ctx, other), store.ErrAlreadyExists)
	})

	t.Run("rename releases the old key", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))

		client.Name = "Acme Industries"
		require.NoError(t, st.Update(ctx, client))

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-2")))
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("delete removes the record", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))

		require.NoError(t, st.Delete(ctx, client.ID))

		_, err := st.Get(ctx, client.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete releases the uniqueness key", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		client := newClient("Acme", "org-1")
		require.NoError(t, st.Create(ctx, client))
		require.NoError(t, st.Delete(ctx, client.ID))

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-1")))
	})

	t.Run("delete nonexistent record returns error", func(t *testing.T) {
		st := New[models.Client]()

		err := st.Delete(context.Background(), models.NewID())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_List(t *testing.T) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		st := New[models.Client]()

		all, err := st.List(context.Background(), store.Filter{})
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("filter by organization", func(t *testing.T) {
		st := New[models.Client]()
		ctx := context.Background()

		require.NoError(t, st.Create(ctx, newClient("Acme", "org-1")))
		require.NoError(t, st.Create(ctx, newClient("Globex", "org-2")))

		scoped, err := st.List(ctx, store.Filter{OrganizationID: "org-1"})
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		require.Equal(t, "Acme", scoped[0].Name)

		all, err := st.List(ctx, store.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
	})
}
