package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateOrganizationRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=80"`
	DOB         time.Time `json:"DOB"`
	Address     string    `json:"address" binding:"omitempty,max=300"`
	Employee    string    `json:"employee" binding:"omitempty,max=80"`
	Description string    `json:"description" binding:"omitempty,max=500"`
	VAT         string    `json:"VAT" binding:"omitempty,max=40"`
	Tel         string    `json:"tel" binding:"omitempty,max=40"`
	Responsible string    `json:"responsible" binding:"omitempty,max=80"`
}

type UpdateOrganizationRequest = CreateOrganizationRequest

func (r CreateOrganizationRequest) Input() models.OrganizationInput {
	return models.OrganizationInput{
		Name:        r.Name,
		DOB:         r.DOB,
		Address:     r.Address,
		Employee:    r.Employee,
		Description: r.Description,
		VAT:         r.VAT,
		Tel:         r.Tel,
		Responsible: r.Responsible,
	}
}

type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DOB         time.Time `json:"DOB"`
	Address     string    `json:"address"`
	Employee    string    `json:"employee"`
	Description string    `json:"description"`
	VAT         string    `json:"VAT"`
	Tel         string    `json:"tel"`
	Responsible string    `json:"responsible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToOrganizationResponse(o *models.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		DOB:         o.DOB,
		Address:     o.Address,
		Employee:    o.Employee,
		Description: o.Description,
		VAT:         o.VAT,
		Tel:         o.Tel,
		Responsible: o.Responsible,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func ToOrganizationResponses(orgs []*models.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, ToOrganizationResponse(o))
	}
	return out
}
