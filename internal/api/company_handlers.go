package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/querybuilder"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/service"
	"github.com/openhire/go-jobboard/utils"
)

// CompanyHandlers provides HTTP handlers for the companies resource.
type CompanyHandlers struct {
	companies service.CompanyService
}

func NewCompanyHandlers(companies service.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companies: companies}
}

func (h *CompanyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Handle == "" || req.Name == "" {
		respondError(w, apperrors.NewValidationError("handle", "handle and name are required"))
		return
	}

	company, err := h.companies.CreateCompany(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"company": company})
}

func (h *CompanyHandlers) List(w http.ResponseWriter, r *http.Request) {
	req, err := parseCompanyFilters(r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}

	companies, err := h.companies.GetCompanies(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (h *CompanyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.companies.GetCompany(chi.URLParam(r, "handle"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *CompanyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	company, err := h.companies.UpdateCompany(chi.URLParam(r, "handle"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *CompanyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if err := h.companies.DeleteCompany(handle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": handle})
}

// parseCompanyFilters converts query parameters into a filter request. An
// unrecognized parameter is rejected here by name, before the builder runs.
func parseCompanyFilters(query url.Values) (request.GetCompaniesRequest, error) {
	var req request.GetCompaniesRequest
	for key := range query {
		switch key {
		case "name":
			req.Name = utils.StringPtr(query.Get(key))
		case "minEmployees":
			n, err := strconv.Atoi(query.Get(key))
			if err != nil {
				return req, apperrors.NewValidationError(key, "must be an integer")
			}
			req.MinEmployees = utils.IntPtr(n)
		case "maxEmployees":
			n, err := strconv.Atoi(query.Get(key))
			if err != nil {
				return req, apperrors.NewValidationError(key, "must be an integer")
			}
			req.MaxEmployees = utils.IntPtr(n)
		default:
			return req, &querybuilder.UnknownFilterError{Key: key}
		}
	}
	return req, nil
}
