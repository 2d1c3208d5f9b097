package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateInvoiceRequest struct {
	InvoiceName         string     `json:"invoiceName" binding:"required,max=80"`
	InvoiceNumber       int        `json:"invoiceNumber" binding:"omitempty,min=0"`
	InvoiceNumberPrefix string     `json:"invoiceNumberPrefix" binding:"omitempty,max=20"`
	CreationDate        time.Time  `json:"creationDate"`
	PayDate             time.Time  `json:"payDate"`
	ExtendedDate        *time.Time `json:"extendedDate"`
	ClientID            uuid.UUID  `json:"clientId" binding:"required"`
	OrganizationID      string     `json:"organizationId" binding:"omitempty,max=80"`
	PayWithin           int        `json:"payWithin" binding:"omitempty,min=0"`
	VATAmount           float64    `json:"VATAmount"`
	FootNotes           string     `json:"footNotes" binding:"omitempty,max=500"`
	Products            string     `json:"products" binding:"omitempty,max=2000"`
	Currency            string     `json:"currency" binding:"omitempty,max=10"`
	PaymentDetails      string     `json:"paymentDetails" binding:"omitempty,max=500"`
	TotalWithVAT        float64    `json:"totalWithVAT"`
	TotalWithoutVAT     float64    `json:"totalWithoutVAT"`
	VATPercentage       string     `json:"VATPercentage" binding:"omitempty,max=10"`
	ChargeVAT           bool       `json:"chargeVAT"`
	Description         string     `json:"description" binding:"omitempty,max=500"`
}

type UpdateInvoiceRequest = CreateInvoiceRequest

func (r CreateInvoiceRequest) Input() models.InvoiceInput {
	return models.InvoiceInput{
		InvoiceName:         r.InvoiceName,
		InvoiceNumber:       r.InvoiceNumber,
		InvoiceNumberPrefix: r.InvoiceNumberPrefix,
		CreationDate:        r.CreationDate,
		PayDate:             r.PayDate,
		ExtendedDate:        r.ExtendedDate,
		ClientID:            r.ClientID,
		OrganizationID:      r.OrganizationID,
		PayWithin:           r.PayWithin,
		VATAmount:           r.VATAmount,
		FootNotes:           r.FootNotes,
		Products:            r.Products,
		Currency:            r.Currency,
		PaymentDetails:      r.PaymentDetails,
		TotalWithVAT:        r.TotalWithVAT,
		TotalWithoutVAT:     r.TotalWithoutVAT,
		VATPercentage:       r.VATPercentage,
		ChargeVAT:           r.ChargeVAT,
		Description:         r.Description,
	}
}

type InvoiceResponse struct {
	ID                  uuid.UUID  `json:"id"`
	InvoiceName         string     `json:"invoiceName"`
	InvoiceNumber       int        `json:"invoiceNumber"`
	InvoiceNumberPrefix string     `json:"invoiceNumberPrefix"`
	CreationDate        time.Time  `json:"creationDate"`
	PayDate             time.Time  `json:"payDate"`
	ExtendedDate        *time.Time `json:"extendedDate,omitempty"`
	ClientID            uuid.UUID  `json:"clientId"`
	OrganizationID      string     `json:"organizationId"`
	PayWithin           int        `json:"payWithin"`
	VATAmount           float64    `json:"VATAmount"`
	FootNotes           string     `json:"footNotes"`
	Products            string     `json:"products"`
	Currency            string     `json:"currency"`
	PaymentDetails      string     `json:"paymentDetails"`
	TotalWithVAT        float64    `json:"totalWithVAT"`
	TotalWithoutVAT     float64    `json:"totalWithoutVAT"`
	VATPercentage       string     `json:"VATPercentage"`
	ChargeVAT           bool       `json:"chargeVAT"`
	Description         string     `json:"description"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func ToInvoiceResponse(i *models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                  i.ID,
		InvoiceName:         i.InvoiceName,
		InvoiceNumber:       i.InvoiceNumber,
		InvoiceNumberPrefix: i.InvoiceNumberPrefix,
		CreationDate:        i.CreationDate,
		PayDate:             i.PayDate,
		ExtendedDate:        i.ExtendedDate,
		ClientID:            i.ClientID,
		OrganizationID:      i.OrganizationID,
		PayWithin:           i.PayWithin,
		VATAmount:           i.VATAmount,
		FootNotes:           i.FootNotes,
		Products:            i.Products,
		Currency:            i.Currency,
		PaymentDetails:      i.PaymentDetails,
		TotalWithVAT:        i.TotalWithVAT,
		TotalWithoutVAT:     i.TotalWithoutVAT,
		VATPercentage:       i.VATPercentage,
		ChargeVAT:           i.ChargeVAT,
		Description:         i.Description,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

func ToInvoiceResponses(invoices []*models.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, ToInvoiceResponse(i))
	}
	return out
}
