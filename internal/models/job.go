package models

// Address is a structured postal address carried by job postings.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// JobDescription is the free-form description block of a job posting.
type JobDescription struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// InputField describes one field of the applicant form.
type InputField struct {
	Label string `json:"label"`
	Field string `json:"field"`
}

// ApplicantProcess describes one step of the application workflow.
type ApplicantProcess struct {
	Order  string `json:"order"`
	Field  string `json:"field"`
	Action string `json:"action,omitempty"`
}

// Job represents an open position published by an organization.
type Job struct {
	Meta

	Title            string // unique per collection
	Department       string
	EmploymentRatio  string
	MaxApplicants    int
	ContractTerm     string
	SalaryPackage    string
	Experience       string
	Responsible      string
	Address          Address
	Description      JobDescription
	ApplicantForm    InputField
	ApplicantProcess ApplicantProcess
	OrganizationID   string
	Status           []int32
}

// JobInput holds the validated request fields for constructing a Job.
type JobInput struct {
	Title            string
	Department       string
	EmploymentRatio  string
	MaxApplicants    int
	ContractTerm     string
	SalaryPackage    string
	Experience       string
	Responsible      string
	Address          Address
	Description      JobDescription
	ApplicantForm    InputField
	ApplicantProcess ApplicantProcess
	OrganizationID   string
	Status           []int32
}

// NewJob builds a transient Job with a freshly generated identifier.
func NewJob(in JobInput) *Job {
	return &Job{
		Meta:             Meta{ID: NewID()},
		Title:            in.Title,
		Department:       in.Department,
		EmploymentRatio:  in.EmploymentRatio,
		MaxApplicants:    in.MaxApplicants,
		ContractTerm:     in.ContractTerm,
		SalaryPackage:    in.SalaryPackage,
		Experience:       in.Experience,
		Responsible:      in.Responsible,
		Address:          in.Address,
		Description:      in.Description,
		ApplicantForm:    in.ApplicantForm,
		ApplicantProcess: in.ApplicantProcess,
		OrganizationID:   in.OrganizationID,
		Status:           in.Status,
	}
}

// Key returns the uniqueness key for jobs.
func (j *Job) Key() string { return j.Title }

// Scope returns the organization the job belongs to.
func (j *Job) Scope() string { return j.OrganizationID }
