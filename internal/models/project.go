package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a client project run by an organization.
// ClientID is a reference by value only; the store does not resolve it.
type Project struct {
	Meta

	Name                     string // unique per collection
	ProjectNumber            int
	StartDate                time.Time
	EndDate                  time.Time
	ClientID                 uuid.UUID
	OrganizationID           string
	AmountOfProjectMembers   int
	Priority                 string
	ProjectResponsiblePerson string
	Status                   string
	MaxBudget                float64
	CurrentBudget            float64
	Currency                 string
	Description              string
	LinkedProjects           []string
	Invoices                 []string
}

// ProjectInput holds the validated request fields for constructing a Project.
type ProjectInput struct {
	Name                     string
	ProjectNumber            int
	StartDate                time.Time
	EndDate                  time.Time
	ClientID                 uuid.UUID
	OrganizationID           string
	AmountOfProjectMembers   int
	Priority                 string
	ProjectResponsiblePerson string
	Status                   string
	MaxBudget                float64
	CurrentBudget            float64
	Currency                 string
	Description              string
	LinkedProjects           []string
	Invoices                 []string
}

// NewProject builds a transient Project with a freshly generated identifier.
func NewProject(in ProjectInput) *Project {
	return &Project{
		Meta:                     Meta{ID: NewID()},
		Name:                     in.Name,
		ProjectNumber:            in.ProjectNumber,
		StartDate:                in.StartDate,
		EndDate:                  in.EndDate,
		ClientID:                 in.ClientID,
		OrganizationID:           in.OrganizationID,
		AmountOfProjectMembers:   in.AmountOfProjectMembers,
		Priority:                 in.Priority,
		ProjectResponsiblePerson: in.ProjectResponsiblePerson,
		Status:                   in.Status,
		MaxBudget:                in.MaxBudget,
		CurrentBudget:            in.CurrentBudget,
		Currency:                 in.Currency,
		Description:              in.Description,
		LinkedProjects:           in.LinkedProjects,
		Invoices:                 in.Invoices,
	}
}

// Key returns the uniqueness key for projects.
func (p *Project) Key() string { return p.Name }

// Scope returns the organization the project belongs to.
func (p *Project) Scope() string { return p.OrganizationID }
