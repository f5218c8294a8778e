package request

import "github.com/shopspring/decimal"

type CreateJobRequest struct {
	Title         string           `json:"title" binding:"required"`
	Salary        *int64           `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle string           `json:"companyHandle" binding:"required"`
}

// UpdateJobRequest deliberately has no ID or CompanyHandle field; neither is
// updatable.
type UpdateJobRequest struct {
	Title  *string          `json:"title"`
	Salary *int64           `json:"salary"`
	Equity *decimal.Decimal `json:"equity"`
}

func (r UpdateJobRequest) UpdateMap() map[string]any {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Salary != nil {
		updates["salary"] = *r.Salary
	}
	if r.Equity != nil {
		updates["equity"] = *r.Equity
	}
	return updates
}

type GetJobsRequest struct {
	Title     *string `form:"title"`     // substring match, case-insensitive
	MinSalary *int64  `form:"minSalary"` // inclusive
	HasEquity *bool   `form:"hasEquity"` // true narrows to equity > 0
}

func (r GetJobsRequest) FilterMap() map[string]any {
	filters := map[string]any{}
	if r.Title != nil {
		filters["title"] = *r.Title
	}
	if r.MinSalary != nil {
		filters["minSalary"] = *r.MinSalary
	}
	if r.HasEquity != nil {
		filters["hasEquity"] = *r.HasEquity
	}
	return filters
}
