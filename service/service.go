package service

import (
	"github.com/openhire/go-jobboard/models"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/response"
)

// CompanyService handles operations related to companies
type CompanyService interface {
	CreateCompany(req request.CreateCompanyRequest) (*models.Company, error)
	GetCompanies(req request.GetCompaniesRequest) ([]response.Company, error)
	GetCompany(handle string) (*response.Company, error)
	UpdateCompany(handle string, req request.UpdateCompanyRequest) (*response.Company, error)
	DeleteCompany(handle string) error
}

// JobService handles operations related to job postings
type JobService interface {
	CreateJob(req request.CreateJobRequest) (*models.Job, error)
	GetJobs(req request.GetJobsRequest) ([]response.Job, error)
	GetJob(id int64) (*response.Job, error)
	UpdateJob(id int64, req request.UpdateJobRequest) (*response.Job, error)
	DeleteJob(id int64) error
}

// UserService handles user accounts, credentials and job applications
type UserService interface {
	RegisterUser(req request.RegisterUserRequest) (*response.User, error)
	GetUsers() ([]response.User, error)
	GetUser(username string) (*response.User, error)
	UpdateUser(username string, req request.UpdateUserRequest) (*response.User, error)
	DeleteUser(username string) error
	Authenticate(req request.AuthenticateRequest) (*response.User, error)
	ApplyToJob(username string, jobID int64) (int64, error)
}
