package request

type CreateCompanyRequest struct {
	Handle       string  `json:"handle" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// UpdateMap flattens the provided fields into the mapping the partial-update
// builder consumes, keyed by external field name.
func (r UpdateCompanyRequest) UpdateMap() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.NumEmployees != nil {
		updates["numEmployees"] = *r.NumEmployees
	}
	if r.LogoURL != nil {
		updates["logoUrl"] = *r.LogoURL
	}
	return updates
}

type GetCompaniesRequest struct {
	Name         *string `form:"name"`         // substring match, case-insensitive
	MinEmployees *int    `form:"minEmployees"` // inclusive
	MaxEmployees *int    `form:"maxEmployees"` // inclusive
}

func (r GetCompaniesRequest) FilterMap() map[string]any {
	filters := map[string]any{}
	if r.Name != nil {
		filters["name"] = *r.Name
	}
	if r.MinEmployees != nil {
		filters["minEmployees"] = *r.MinEmployees
	}
	if r.MaxEmployees != nil {
		filters["maxEmployees"] = *r.MaxEmployees
	}
	return filters
}
