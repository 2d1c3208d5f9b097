package models

// Product represents a product or service an organization sells.
type Product struct {
	Meta

	Name           string // unique per collection
	OrganizationID string
	VATPercentage  float64
	Price          float64
	Description    string
	IsHourlyRate   bool
}

// ProductInput holds the validated request fields for constructing a Product.
type ProductInput struct {
	Name           string
	OrganizationID string
	VATPercentage  float64
	Price          float64
	Description    string
	IsHourlyRate   bool
}

// NewProduct builds a transient Product with a freshly generated identifier.
func NewProduct(in ProductInput) *Product {
	return &Product{
		Meta:           Meta{ID: NewID()},
		Name:           in.Name,
		OrganizationID: in.OrganizationID,
		VATPercentage:  in.VATPercentage,
		Price:          in.Price,
		Description:    in.Description,
		IsHourlyRate:   in.IsHourlyRate,
	}
}

// Key returns the uniqueness key for products.
func (p *Product) Key() string { return p.Name }

// Scope returns the organization the product belongs to.
func (p *Product) Scope() string { return p.OrganizationID }
