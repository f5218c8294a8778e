package serviceimpl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/querybuilder"
	"github.com/openhire/go-jobboard/models"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/response"
	"gorm.io/gorm"
)

type jobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *jobService {
	return &jobService{DB: db}
}

// Title and salary/equity column names already match their external names;
// only companyHandle needs translation.
var jobColNames = map[string]string{
	"companyHandle": "company_handle",
}

var jobFilters = querybuilder.Vocabulary{
	"title":     {Column: "title", Op: "ILIKE", Substring: true},
	"minSalary": {Column: "salary", Op: ">="},
	"hasEquity": {Literal: "equity > 0"},
}

const jobProjection = `id, title, salary, equity, company_handle AS "companyHandle"`

var jobBaseQuery = querybuilder.BaseQuery{
	Select:  `SELECT ` + jobProjection + ` FROM jobs`,
	OrderBy: "title",
}

func (s *jobService) CreateJob(req request.CreateJobRequest) (*models.Job, error) {
	var count int64
	if err := s.DB.Model(&models.Company{}).Where("handle = ?", req.CompanyHandle).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check company: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewNotFoundError("company", req.CompanyHandle)
	}

	job := &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (s *jobService) GetJobs(req request.GetJobsRequest) ([]response.Job, error) {
	stmt, values, err := querybuilder.BuildFilterQuery(jobBaseQuery, jobFilters, req.FilterMap())
	if err != nil {
		return nil, err
	}

	var jobs []response.Job
	if err := s.DB.Raw(stmt, values...).Scan(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) GetJob(id int64) (*response.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}

	var company models.Company
	if err := s.DB.First(&company, "handle = ?", job.CompanyHandle).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch job company: %w", err)
	}

	return &response.Job{
		ID:      job.ID,
		Title:   job.Title,
		Salary:  job.Salary,
		Equity:  job.Equity,
		Company: companyResponse(&company),
	}, nil
}

func (s *jobService) UpdateJob(id int64, req request.UpdateJobRequest) (*response.Job, error) {
	assignments, values, err := querybuilder.BuildPartialUpdate(req.UpdateMap(), jobColNames)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		assignments, len(values)+1, jobProjection)
	values = append(values, id)

	var job response.Job
	result := s.DB.Raw(stmt, values...).Scan(&job)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("job", strconv.FormatInt(id, 10))
	}
	return &job, nil
}

func (s *jobService) DeleteJob(id int64) error {
	result := s.DB.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("job", strconv.FormatInt(id, 10))
	}
	return nil
}
