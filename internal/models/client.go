package models

// Client represents a billable customer of an organization.
type Client struct {
	Meta

	Name           string // unique per collection
	OrganizationID string
	VAT            string
	Email          string
	Tel            string
	Responsible    string
	FirstName      string
	LastName       string
	Address        string
	Description    string
}

// ClientInput holds the validated request fields for constructing a Client.
type ClientInput struct {
	Name           string
	OrganizationID string
	VAT            string
	Email          string
	Tel            string
	Responsible    string
	FirstName      string
	LastName       string
	Address        string
	Description    string
}

// NewClient builds a transient Client with a freshly generated identifier.
// Timestamps are left zero until the store persists the record.
func NewClient(in ClientInput) *Client {
	return &Client{
		Meta:           Meta{ID: NewID()},
		Name:           in.Name,
		OrganizationID: in.OrganizationID,
		VAT:            in.VAT,
		Email:          in.Email,
		Tel:            in.Tel,
		Responsible:    in.Responsible,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Address:        in.Address,
		Description:    in.Description,
	}
}

// Key returns the uniqueness key for clients.
func (c *Client) Key() string { return c.Name }

// Scope returns the organization the client belongs to.
func (c *Client) Scope() string { return c.OrganizationID }
