package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateProjectRequest struct {
	Name                     string    `json:"name" binding:"required,max=80"`
	ProjectNumber            int       `json:"projectNumber" binding:"omitempty,min=0"`
	StartDate                time.Time `json:"startDate"`
	EndDate                  time.Time `json:"endDate"`
	ClientID                 uuid.UUID `json:"clientId" binding:"required"`
	OrganizationID           string    `json:"organizationId" binding:"omitempty,max=80"`
	AmountOfProjectMembers   int       `json:"amountOfProjectMembers" binding:"omitempty,min=0"`
	Priority                 string    `json:"priority" binding:"omitempty,max=40"`
	ProjectResponsiblePerson string    `json:"projectResponsiblePerson" binding:"omitempty,max=80"`
	Status                   string    `json:"status" binding:"omitempty,max=40"`
	MaxBudget                float64   `json:"maxBudget" binding:"omitempty,min=0"`
	CurrentBudget            float64   `json:"currentBudget" binding:"omitempty,min=0"`
	Currency                 string    `json:"currency" binding:"omitempty,max=10"`
	Description              string    `json:"description" binding:"omitempty,max=500"`
	LinkedProjects           []string  `json:"linkedProjects"`
	Invoices                 []string  `json:"invoices"`
}

type UpdateProjectRequest = CreateProjectRequest

func (r CreateProjectRequest) Input() models.ProjectInput {
	return models.ProjectInput{
		Name:                     r.Name,
		ProjectNumber:            r.ProjectNumber,
		StartDate:                r.StartDate,
		EndDate:                  r.EndDate,
		ClientID:                 r.ClientID,
		OrganizationID:           r.OrganizationID,
		AmountOfProjectMembers:   r.AmountOfProjectMembers,
		Priority:                 r.Priority,
		ProjectResponsiblePerson: r.ProjectResponsiblePerson,
		Status:                   r.Status,
		MaxBudget:                r.MaxBudget,
		CurrentBudget:            r.CurrentBudget,
		Currency:                 r.Currency,
		Description:              r.Description,
		LinkedProjects:           r.LinkedProjects,
		Invoices:                 r.Invoices,
	}
}

type ProjectResponse struct {
	ID                       uuid.UUID `json:"id"`
	Name                     string    `json:"name"`
	ProjectNumber            int       `json:"projectNumber"`
	StartDate                time.Time `json:"startDate"`
	EndDate                  time.Time `json:"endDate"`
	ClientID                 uuid.UUID `json:"clientId"`
	OrganizationID           string    `json:"organizationId"`
	AmountOfProjectMembers   int       `json:"amountOfProjectMembers"`
	Priority                 string    `json:"priority"`
	ProjectResponsiblePerson string    `json:"projectResponsiblePerson"`
	Status                   string    `json:"status"`
	MaxBudget                float64   `json:"maxBudget"`
	CurrentBudget            float64   `json:"currentBudget"`
	Currency                 string    `json:"currency"`
	Description              string    `json:"description"`
	LinkedProjects           []string  `json:"linkedProjects"`
	Invoices                 []string  `json:"invoices"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func ToProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                       p.ID,
		Name:                     p.Name,
		ProjectNumber:            p.ProjectNumber,
		StartDate:                p.StartDate,
		EndDate:                  p.EndDate,
		ClientID:                 p.ClientID,
		OrganizationID:           p.OrganizationID,
		AmountOfProjectMembers:   p.AmountOfProjectMembers,
		Priority:                 p.Priority,
		ProjectResponsiblePerson: p.ProjectResponsiblePerson,
		Status:                   p.Status,
		MaxBudget:                p.MaxBudget,
		CurrentBudget:            p.CurrentBudget,
		Currency:                 p.Currency,
		Description:              p.Description,
		LinkedProjects:           p.LinkedProjects,
		Invoices:                 p.Invoices,
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
}

func ToProjectResponses(projects []*models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectResponse(p))
	}
	return out
}
