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

// JobHandlers provides HTTP handlers for the jobs resource.
type JobHandlers struct {
	jobs service.JobService
}

func NewJobHandlers(jobs service.JobService) *JobHandlers {
	return &JobHandlers{jobs: jobs}
}

func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Title == "" || req.CompanyHandle == "" {
		respondError(w, apperrors.NewValidationError("title", "title and companyHandle are required"))
		return
	}

	job, err := h.jobs.CreateJob(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"job": job})
}

func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	req, err := parseJobFilters(r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}

	jobs, err := h.jobs.GetJobs(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	job, err := h.jobs.GetJob(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req request.UpdateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	job, err := h.jobs.UpdateJob(id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.jobs.DeleteJob(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func jobID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func parseJobFilters(query url.Values) (request.GetJobsRequest, error) {
	var req request.GetJobsRequest
	for key := range query {
		switch key {
		case "title":
			req.Title = utils.StringPtr(query.Get(key))
		case "minSalary":
			n, err := strconv.ParseInt(query.Get(key), 10, 64)
			if err != nil {
				return req, apperrors.NewValidationError(key, "must be an integer")
			}
			req.MinSalary = utils.Int64Ptr(n)
		case "hasEquity":
			b, err := strconv.ParseBool(query.Get(key))
			if err != nil {
				return req, apperrors.NewValidationError(key, "must be a boolean")
			}
			req.HasEquity = utils.BoolPtr(b)
		default:
			return req, &querybuilder.UnknownFilterError{Key: key}
		}
	}
	return req, nil
}
