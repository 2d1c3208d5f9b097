package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required,max=80"`
	OrganizationID string  `json:"organizationId" binding:"omitempty,max=80"`
	VATPercentage  float64 `json:"VATPercentage" binding:"omitempty,min=0,max=100"`
	Price          float64 `json:"price" binding:"omitempty,min=0"`
	Description    string  `json:"description" binding:"omitempty,max=500"`
	IsHourlyRate   bool    `json:"isHourlyRate"`
}

type UpdateProductRequest = CreateProductRequest

func (r CreateProductRequest) Input() models.ProductInput {
	return models.ProductInput{
		Name:           r.Name,
		OrganizationID: r.OrganizationID,
		VATPercentage:  r.VATPercentage,
		Price:          r.Price,
		Description:    r.Description,
		IsHourlyRate:   r.IsHourlyRate,
	}
}

type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationId"`
	VATPercentage  float64   `json:"VATPercentage"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	IsHourlyRate   bool      `json:"isHourlyRate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		OrganizationID: p.OrganizationID,
		VATPercentage:  p.VATPercentage,
		Price:          p.Price,
		Description:    p.Description,
		IsHourlyRate:   p.IsHourlyRate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
