package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftline/backoffice/internal/models"
)

type CreateJobRequest struct {
	Title            string                  `json:"title" binding:"required,max=80"`
	Department       string                  `json:"department" binding:"omitempty,max=80"`
	EmploymentRatio  string                  `json:"employmentRatio" binding:"omitempty,max=40"`
	MaxApplicants    int                     `json:"maxApplicants" binding:"omitempty,min=0"`
	ContractTerm     string                  `json:"contractTerm" binding:"omitempty,max=80"`
	SalaryPackage    string                  `json:"salaryPackage" binding:"omitempty,max=80"`
	Experience       string                  `json:"experience" binding:"omitempty,max=80"`
	Responsible      string                  `json:"responsible" binding:"omitempty,max=80"`
	Address          models.Address          `json:"address"`
	Description      models.JobDescription   `json:"description"`
	ApplicantForm    models.InputField       `json:"applicantForm"`
	ApplicantProcess models.ApplicantProcess `json:"applicantProcess"`
	OrganizationID   string                  `json:"organizationId" binding:"omitempty,max=80"`
	Status           []int32                 `json:"status"`
}

type UpdateJobRequest = CreateJobRequest

func (r CreateJobRequest) Input() models.JobInput {
	return models.JobInput{
		Title:            r.Title,
		Department:       r.Department,
		EmploymentRatio:  r.EmploymentRatio,
		MaxApplicants:    r.MaxApplicants,
		ContractTerm:     r.ContractTerm,
		SalaryPackage:    r.SalaryPackage,
		Experience:       r.Experience,
		Responsible:      r.Responsible,
		Address:          r.Address,
		Description:      r.Description,
		ApplicantForm:    r.ApplicantForm,
		ApplicantProcess: r.ApplicantProcess,
		OrganizationID:   r.OrganizationID,
		Status:           r.Status,
	}
}

type JobResponse struct {
	ID               uuid.UUID               `json:"id"`
	Title            string                  `json:"title"`
	Department       string                  `json:"department"`
	EmploymentRatio  string                  `json:"employmentRatio"`
	MaxApplicants    int                     `json:"maxApplicants"`
	ContractTerm     string                  `json:"contractTerm"`
	SalaryPackage    string                  `json:"salaryPackage"`
	Experience       string                  `json:"experience"`
	Responsible      string                  `json:"responsible"`
	Address          models.Address          `json:"address"`
	Description      models.JobDescription   `json:"description"`
	ApplicantForm    models.InputField       `json:"applicantForm"`
	ApplicantProcess models.ApplicantProcess `json:"applicantProcess"`
	OrganizationID   string                  `json:"organizationId"`
	Status           []int32                 `json:"status"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func ToJobResponse(j *models.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Department:       j.Department,
		EmploymentRatio:  j.EmploymentRatio,
		MaxApplicants:    j.MaxApplicants,
		ContractTerm:     j.ContractTerm,
		SalaryPackage:    j.SalaryPackage,
		Experience:       j.Experience,
		Responsible:      j.Responsible,
		Address:          j.Address,
		Description:      j.Description,
		ApplicantForm:    j.ApplicantForm,
		ApplicantProcess: j.ApplicantProcess,
		OrganizationID:   j.OrganizationID,
		Status:           j.Status,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func ToJobResponses(jobs []*models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToJobResponse(j))
	}
	return out
}
