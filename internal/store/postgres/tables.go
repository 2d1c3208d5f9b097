package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftline/backoffice/internal/models"
)

// NewClientStore creates the PostgreSQL-backed client store.
func NewClientStore(pool *pgxpool.Pool) *EntityStore[models.Client, *models.Client] {
	return newEntityStore[models.Client](pool, table[models.Client]{
		name:      "clients",
		orgColumn: "organization_id",
		columns: []string{
			"id", "name", "organization_id", "vat", "email", "tel",
			"responsible", "first_name", "last_name", "address", "description",
		},
		args: func(c *models.Client) []any {
			return []any{
				c.ID, c.Name, c.OrganizationID, c.VAT, c.Email, c.Tel,
				c.Responsible, c.FirstName, c.LastName, c.Address, c.Description,
			}
		},
		scan: func(row rowScanner) (*models.Client, error) {
			var c models.Client
			if err := row.Scan(
				&c.ID, &c.Name, &c.OrganizationID, &c.VAT, &c.Email, &c.Tel,
				&c.Responsible, &c.FirstName, &c.LastName, &c.Address, &c.Description,
				&c.CreatedAt, &c.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &c, nil
		},
	})
}

// NewInvoiceStore creates the PostgreSQL-backed invoice store.
func NewInvoiceStore(pool *pgxpool.Pool) *EntityStore[models.Invoice, *models.Invoice] {
	return newEntityStore[models.Invoice](pool, table[models.Invoice]{
		name:      "invoices",
		orgColumn: "organization_id",
		columns: []string{
			"id", "invoice_name", "invoice_number", "invoice_number_prefix",
			"creation_date", "pay_date", "extended_date", "client_id",
			"organization_id", "pay_within", "vat_amount", "foot_notes",
			"products", "currency", "payment_details", "total_with_vat",
			"total_without_vat", "vat_percentage", "charge_vat", "description",
		},
		args: func(i *models.Invoice) []any {
			return []any{
				i.ID, i.InvoiceName, i.InvoiceNumber, i.InvoiceNumberPrefix,
				i.CreationDate, i.PayDate, i.ExtendedDate, i.ClientID,
				i.OrganizationID, i.PayWithin, i.VATAmount, i.FootNotes,
				i.Products, i.Currency, i.PaymentDetails, i.TotalWithVAT,
				i.TotalWithoutVAT, i.VATPercentage, i.ChargeVAT, i.Description,
			}
		},
		scan: func(row rowScanner) (*models.Invoice, error) {
			var i models.Invoice
			if err := row.Scan(
				&i.ID, &i.InvoiceName, &i.InvoiceNumber, &i.InvoiceNumberPrefix,
				&i.CreationDate, &i.PayDate, &i.ExtendedDate, &i.ClientID,
				&i.OrganizationID, &i.PayWithin, &i.VATAmount, &i.FootNotes,
				&i.Products, &i.Currency, &i.PaymentDetails, &i.TotalWithVAT,
				&i.TotalWithoutVAT, &i.VATPercentage, &i.ChargeVAT, &i.Description,
				&i.CreatedAt, &i.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &i, nil
		},
	})
}

// NewJobStore creates the PostgreSQL-backed job store. The nested
// address/description/form/process objects are stored as jsonb.
func NewJobStore(pool *pgxpool.Pool) *EntityStore[models.Job, *models.Job] {
	return newEntityStore[models.Job](pool, table[models.Job]{
		name:      "jobs",
		orgColumn: "organization_id",
		columns: []string{
			"id", "title", "department", "employment_ratio", "max_applicants",
			"contract_term", "salary_package", "experience", "responsible",
			"address", "description", "applicant_form", "applicant_process",
			"organization_id", "status",
		},
		args: func(j *models.Job) []any {
			return []any{
				j.ID, j.Title, j.Department, j.EmploymentRatio, j.MaxApplicants,
				j.ContractTerm, j.SalaryPackage, j.Experience, j.Responsible,
				j.Address, j.Description, j.ApplicantForm, j.ApplicantProcess,
				j.OrganizationID, j.Status,
			}
		},
		scan: func(row rowScanner) (*models.Job, error) {
			var j models.Job
			if err := row.Scan(
				&j.ID, &j.Title, &j.Department, &j.EmploymentRatio, &j.MaxApplicants,
				&j.ContractTerm, &j.SalaryPackage, &j.Experience, &j.Responsible,
				&j.Address, &j.Description, &j.ApplicantForm, &j.ApplicantProcess,
				&j.OrganizationID, &j.Status,
				&j.CreatedAt, &j.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &j, nil
		},
	})
}

// NewOrganizationStore creates the PostgreSQL-backed organization store.
func NewOrganizationStore(pool *pgxpool.Pool) *EntityStore[models.Organization, *models.Organization] {
	return newEntityStore[models.Organization](pool, table[models.Organization]{
		name: "organizations",
		columns: []string{
			"id", "name", "dob", "address", "employee", "description",
			"vat", "tel", "responsible",
		},
		args: func(o *models.Organization) []any {
			return []any{
				o.ID, o.Name, o.DOB, o.Address, o.Employee, o.Description,
				o.VAT, o.Tel, o.Responsible,
			}
		},
		scan: func(row rowScanner) (*models.Organization, error) {
			var o models.Organization
			if err := row.Scan(
				&o.ID, &o.Name, &o.DOB, &o.Address, &o.Employee, &o.Description,
				&o.VAT, &o.Tel, &o.Responsible,
				&o.CreatedAt, &o.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &o, nil
		},
	})
}

// NewProductStore creates the PostgreSQL-backed product store.
func NewProductStore(pool *pgxpool.Pool) *EntityStore[models.Product, *models.Product] {
	return newEntityStore[models.Product](pool, table[models.Product]{
		name:      "products",
		orgColumn: "organization_id",
		columns: []string{
			"id", "name", "organization_id", "vat_percentage", "price",
			"description", "is_hourly_rate",
		},
		args: func(p *models.Product) []any {
			return []any{
				p.ID, p.Name, p.OrganizationID, p.VATPercentage, p.Price,
				p.Description, p.IsHourlyRate,
			}
		},
		scan: func(row rowScanner) (*models.Product, error) {
			var p models.Product
			if err := row.Scan(
				&p.ID, &p.Name, &p.OrganizationID, &p.VATPercentage, &p.Price,
				&p.Description, &p.IsHourlyRate,
				&p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &p, nil
		},
	})
}

// NewProjectStore creates the PostgreSQL-backed project store.
func NewProjectStore(pool *pgxpool.Pool) *EntityStore[models.Project, *models.Project] {
	return newEntityStore[models.Project](pool, table[models.Project]{
		name:      "projects",
		orgColumn: "organization_id",
		columns: []string{
			"id", "name", "project_number", "start_date", "end_date",
			"client_id", "organization_id", "amount_of_project_members",
			"priority", "project_responsible_person", "status", "max_budget",
			"current_budget", "currency", "description", "linked_projects",
			"invoices",
		},
		args: func(p *models.Project) []any {
			return []any{
				p.ID, p.Name, p.ProjectNumber, p.StartDate, p.EndDate,
				p.ClientID, p.OrganizationID, p.AmountOfProjectMembers,
				p.Priority, p.ProjectResponsiblePerson, p.Status, p.MaxBudget,
				p.CurrentBudget, p.Currency, p.Description, p.LinkedProjects,
				p.Invoices,
			}
		},
		scan: func(row rowScanner) (*models.Project, error) {
			var p models.Project
			if err := row.Scan(
				&p.ID, &p.Name, &p.ProjectNumber, &p.StartDate, &p.EndDate,
				&p.ClientID, &p.OrganizationID, &p.AmountOfProjectMembers,
				&p.Priority, &p.ProjectResponsiblePerson, &p.Status, &p.MaxBudget,
				&p.CurrentBudget, &p.Currency, &p.Description, &p.LinkedProjects,
				&p.Invoices,
				&p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &p, nil
		},
	})
}
