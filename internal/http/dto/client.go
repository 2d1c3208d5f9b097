package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required,max=80"`
	OrganizationID string `json:"organizationId" binding:"omitempty,max=80"`
	VAT            string `json:"VAT" binding:"omitempty,max=40"`
	Email          string `json:"email" binding:"omitempty,email"`
	Tel            string `json:"tel" binding:"omitempty,max=40"`
	Responsible    string `json:"responsible" binding:"omitempty,max=80"`
	FirstName      string `json:"firstName" binding:"omitempty,max=80"`
	LastName       string `json:"lastName" binding:"omitempty,max=80"`
	Address        string `json:"address" binding:"omitempty,max=300"`
	Description    string `json:"description" binding:"omitempty,max=500"`
}

type UpdateClientRequest = CreateClientRequest

func (r CreateClientRequest) Input() models.ClientInput {
	return models.ClientInput{
		Name:           r.Name,
		OrganizationID: r.OrganizationID,
		VAT:            r.VAT,
		Email:          r.Email,
		Tel:            r.Tel,
		Responsible:    r.Responsible,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Address:        r.Address,
		Description:    r.Description,
	}
}

type ClientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationId"`
	VAT            string    `json:"VAT"`
	Email          string    `json:"email"`
	Tel            string    `json:"tel"`
	Responsible    string    `json:"responsible"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		OrganizationID: c.OrganizationID,
		VAT:            c.VAT,
		Email:          c.Email,
		Tel:            c.Tel,
		Responsible:    c.Responsible,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Address:        c.Address,
		Description:    c.Description,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToClientResponses(clients []*models.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
