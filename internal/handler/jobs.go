package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bpohire/portal/internal/domain"
)

func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}

type listingData struct {
	Jobs    []domain.Job     `json:"jobs"`
	Filters domain.FilterSet `json:"filters"`
}

func (h *Handler) listingData() listingData {
	return listingData{
		Jobs:    h.listing.Jobs(),
		Filters: h.listing.Filters(),
	}
}

// parseListQuery reads an optional filter override off the URL. Returns nil
// when no filter parameter is present.
func parseListQuery(r *http.Request) (*domain.FilterSet, error) {
	q := r.URL.Query()

	filters := &domain.FilterSet{
		Title:   q.Get("title"),
		City:    q.Get("city"),
		JobType: domain.JobType(q.Get("jobType")),
		Shift:   domain.Shift(q.Get("shift")),
	}

	if raw := q.Get("isVoice"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		filters.IsVoice = &v
	}
	if raw := q.Get("minSalary"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		filters.MinSalary = v
	}
	if raw := q.Get("maxSalary"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		filters.MaxSalary = v
	}

	if filters.IsZero() {
		return nil, nil
	}
	return filters, nil
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	override, err := parseListQuery(r)
	if err != nil {
		h.errorResponse(w, r, "invalid listing query")
		return
	}
	if override != nil && !override.Valid() {
		h.errorResponse(w, r, "invalid listing query")
		return
	}

	if err := h.listing.FetchAll(r.Context(), override); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", h.listingData())
}

func (h *Handler) SearchJobs(w http.ResponseWriter, r *http.Request) {
	var filters domain.FilterSet
	if err := h.readJSON(r, &filters); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !filters.Valid() {
		h.errorResponse(w, r, "invalid search filters")
		return
	}

	if err := h.listing.Search(r.Context(), filters); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", h.listingData())
}

func (h *Handler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	if err := h.listing.ClearFilters(r.Context()); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "filters cleared", h.listingData())
}

func (h *Handler) JobDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid job id")
		return
	}

	job, err := h.listing.GetByID(r.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			h.notFoundResponse(w, r, "job not found")
			return
		}
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", job)
}
