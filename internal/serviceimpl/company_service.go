package serviceimpl

import (
	"errors"
	"fmt"

	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/querybuilder"
	"github.com/openhire/go-jobboard/models"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/response"
	"gorm.io/gorm"
)

type companyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *companyService {
	return &companyService{DB: db}
}

// companyColNames maps external field names to storage columns.
var companyColNames = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

var companyFilters = querybuilder.Vocabulary{
	"name":         {Column: "name", Op: "ILIKE", Substring: true},
	"minEmployees": {Column: "num_employees", Op: ">="},
	"maxEmployees": {Column: "num_employees", Op: "<="},
}

const companyProjection = `handle, name, description, num_employees AS "numEmployees", logo_url AS "logoUrl"`

var companyBaseQuery = querybuilder.BaseQuery{
	Select:  `SELECT ` + companyProjection + ` FROM companies`,
	OrderBy: "name",
}

func (s *companyService) CreateCompany(req request.CreateCompanyRequest) (*models.Company, error) {
	var count int64
	if err := s.DB.Model(&models.Company{}).Where("handle = ?", req.Handle).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if count > 0 {
		return nil, apperrors.NewAlreadyExistsError("company", req.Handle)
	}

	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (s *companyService) GetCompanies(req request.GetCompaniesRequest) ([]response.Company, error) {
	if req.MinEmployees != nil && req.MaxEmployees != nil && *req.MinEmployees > *req.MaxEmployees {
		return nil, apperrors.NewValidationError("minEmployees", "cannot be greater than maxEmployees")
	}

	stmt, values, err := querybuilder.BuildFilterQuery(companyBaseQuery, companyFilters, req.FilterMap())
	if err != nil {
		return nil, err
	}

	var companies []response.Company
	if err := s.DB.Raw(stmt, values...).Scan(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) GetCompany(handle string) (*response.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, "handle = ?", handle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company", handle)
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	var jobs []models.Job
	if err := s.DB.Where("company_handle = ?", handle).Order("title").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch company jobs: %w", err)
	}

	resp := companyResponse(&company)
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, response.Job{
			ID:     job.ID,
			Title:  job.Title,
			Salary: job.Salary,
			Equity: job.Equity,
		})
	}
	return resp, nil
}

func (s *companyService) UpdateCompany(handle string, req request.UpdateCompanyRequest) (*response.Company, error) {
	assignments, values, err := querybuilder.BuildPartialUpdate(req.UpdateMap(), companyColNames)
	if err != nil {
		return nil, err
	}

	// The builder leaves the next placeholder predictable, so the lookup
	// key continues the sequence.
	stmt := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		assignments, len(values)+1, companyProjection)
	values = append(values, handle)

	var company response.Company
	result := s.DB.Raw(stmt, values...).Scan(&company)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("company", handle)
	}
	return &company, nil
}

func (s *companyService) DeleteCompany(handle string) error {
	result := s.DB.Delete(&models.Company{}, "handle = ?", handle)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("company", handle)
	}
	return nil
}

func companyResponse(c *models.Company) *response.Company {
	return &response.Company{
		Handle:       c.Handle,
		Name:         c.Name,
		Description:  c.Description,
		NumEmployees: c.NumEmployees,
		LogoURL:      c.LogoURL,
	}
}
