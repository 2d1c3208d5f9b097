package models

import "time"

// Organization represents a tenant in the system. All other entities are
// scoped to an organization by value; organizations themselves are unscoped.
type Organization struct {
	Meta

	Name        string // unique per collection
	DOB         time.Time
	Address     string
	Employee    string
	Description string
	VAT         string
	Tel         string
	Responsible string
}

// OrganizationInput holds the validated request fields for constructing an
// Organization.
type OrganizationInput struct {
	Name        string
	DOB         time.Time
	Address     string
	Employee    string
	Description string
	VAT         string
	Tel         string
	Responsible string
}

// NewOrganization builds a transient Organization with a freshly generated
// identifier.
func NewOrganization(in OrganizationInput) *Organization {
	return &Organization{
		Meta:        Meta{ID: NewID()},
		Name:        in.Name,
		DOB:         in.DOB,
		Address:     in.Address,
		Employee:    in.Employee,
		Description: in.Description,
		VAT:         in.VAT,
		Tel:         in.Tel,
		Responsible: in.Responsible,
	}
}

// Key returns the uniqueness key for organizations.
func (o *Organization) Key() string { return o.Name }

// Scope returns "" as organizations are not scoped to another tenant.
func (o *Organization) Scope() string { return "" }
