package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an invoice issued by an organization to a client.
// ClientID is a reference by value only; the store does not resolve it.
type Invoice struct {
	Meta

	InvoiceName         string // unique per collection
	InvoiceNumber       int
	InvoiceNumberPrefix string
	CreationDate        time.Time
	PayDate             time.Time
	ExtendedDate        *time.Time
	ClientID            uuid.UUID
	OrganizationID      string
	PayWithin           int
	VATAmount           float64
	FootNotes           string
	Products            string
	Currency            string
	PaymentDetails      string
	TotalWithVAT        float64
	TotalWithoutVAT     float64
	VATPercentage       string
	ChargeVAT           bool
	Description         string
}

// InvoiceInput holds the validated request fields for constructing an Invoice.
type InvoiceInput struct {
	InvoiceName         string
	InvoiceNumber       int
	InvoiceNumberPrefix string
	CreationDate        time.Time
	PayDate             time.Time
	ExtendedDate        *time.Time
	ClientID            uuid.UUID
	OrganizationID      string
	PayWithin           int
	VATAmount           float64
	FootNotes           string
	Products            string
	Currency            string
	PaymentDetails      string
	TotalWithVAT        float64
	TotalWithoutVAT     float64
	VATPercentage       string
	ChargeVAT           bool
	Description         string
}

// NewInvoice builds a transient Invoice with a freshly generated identifier.
func NewInvoice(in InvoiceInput) *Invoice {
	return &Invoice{
		Meta:                Meta{ID: NewID()},
		InvoiceName:         in.InvoiceName,
		InvoiceNumber:       in.InvoiceNumber,
		InvoiceNumberPrefix: in.InvoiceNumberPrefix,
		CreationDate:        in.CreationDate,
		PayDate:             in.PayDate,
		ExtendedDate:        in.ExtendedDate,
		ClientID:            in.ClientID,
		OrganizationID:      in.OrganizationID,
		PayWithin:           in.PayWithin,
		VATAmount:           in.VATAmount,
		FootNotes:           in.FootNotes,
		Products:            in.Products,
		Currency:            in.Currency,
		PaymentDetails:      in.PaymentDetails,
		TotalWithVAT:        in.TotalWithVAT,
		TotalWithoutVAT:     in.TotalWithoutVAT,
		VATPercentage:       in.VATPercentage,
		ChargeVAT:           in.ChargeVAT,
		Description:         in.Description,
	}
}

// Key returns the uniqueness key for invoices.
func (i *Invoice) Key() string { return i.InvoiceName }

// Scope returns the organization the invoice belongs to.
func (i *Invoice) Scope() string { return i.OrganizationID }
