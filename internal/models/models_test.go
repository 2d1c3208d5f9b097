package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c := NewClient(ClientInput{Name: "Acme Corp", OrganizationID: "org-1", Email: "a@b.example"})

	require.NotEqual(t, uuid.Nil, c.ID)
	require.Equal(t, "Acme Corp", c.Name)
	require.Equal(t, "a@b.example", c.Email)
	require.True(t, c.CreatedAt.IsZero(), "timestamps belong to the store")
	require.True(t, c.UpdatedAt.IsZero())
}

func TestConstructorsGenerateDistinctIDs(t *testing.T) {
	a := NewOrganization(OrganizationInput{Name: "First"})
	b := NewOrganization(OrganizationInput{Name: "Second"})

	require.NotEqual(t, a.ID, b.ID)
}

func TestIDsAreTimeOrdered(t *testing.T) {
	a := NewID()
	b := NewID()

	require.Equal(t, uuid.Version(7), a.Version())
	require.LessOrEqual(t, a.String(), b.String())
}

func TestUniquenessKeys(t *testing.T) {
	require.Equal(t, "Acme", NewClient(ClientInput{Name: "Acme"}).Key())
	require.Equal(t, "INV-1", NewInvoice(InvoiceInput{InvoiceName: "INV-1"}).Key())
	require.Equal(t, "Engineer", NewJob(JobInput{Title: "Engineer"}).Key())
	require.Equal(t, "Craftline", NewOrganization(OrganizationInput{Name: "Craftline"}).Key())
	require.Equal(t, "Consulting", NewProduct(ProductInput{Name: "Consulting"}).Key())
	require.Equal(t, "Rollout", NewProject(ProjectInput{Name: "Rollout"}).Key())
}

func TestScopes(t *testing.T) {
	require.Equal(t, "org-1", NewClient(ClientInput{Name: "Acme", OrganizationID: "org-1"}).Scope())
	require.Empty(t, NewOrganization(OrganizationInput{Name: "Craftline"}).Scope())
}
