package handler

import (
	"net/http"

	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/repository"
)

type jobForm struct {
	Title              string `json:"title" validate:"required"`
	City               string `json:"city" validate:"required"`
	JobType            string `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Shift              string `json:"shift" validate:"required,oneof=DAY NIGHT ROTATIONAL FLEXIBLE"`
	IsVoice            bool   `json:"isVoice"`
	Salary             int64  `json:"salary" validate:"required,gt=0"`
	Description        string `json:"description" validate:"required"`
	Requirements       string `json:"requirements"`
	Benefits           string `json:"benefits"`
	ExperienceRequired string `json:"experienceRequired"`
}

func (f jobForm) input() repository.JobInput {
	return repository.JobInput{
		Title:              f.Title,
		City:               f.City,
		JobType:            domain.JobType(f.JobType),
		Shift:              domain.Shift(f.Shift),
		IsVoice:            f.IsVoice,
		Salary:             f.Salary,
		Description:        f.Description,
		Requirements:       f.Requirements,
		Benefits:           f.Benefits,
		ExperienceRequired: f.ExperienceRequired,
	}
}

func (h *Handler) EmployerDashboard(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetEmployerJobs(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}
	apps, err := h.repository.GetEmployerApplications(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	identity := r.Context().Value(IdentityCtxKey).(*domain.Identity)
	h.successResponse(w, r, "", struct {
		Identity     *domain.Identity     `json:"identity"`
		Jobs         []domain.Job         `json:"jobs"`
		Applications []domain.Application `json:"applications"`
	}{Identity: identity, Jobs: jobs, Applications: apps})
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var form jobForm
	if err := h.readJSON(r, &form); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.badRequest(w, r, err)
		return
	}

	job, err := h.repository.CreateJob(r.Context(), form.input())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "job posted", job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid job id")
		return
	}

	var form jobForm
	if err := h.readJSON(r, &form); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.badRequest(w, r, err)
		return
	}

	job, err := h.repository.UpdateJob(r.Context(), id, form.input())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "job updated", job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid job id")
		return
	}

	if err := h.repository.DeleteJob(r.Context(), id); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "job deleted", nil)
}

func (h *Handler) EmployerApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.repository.GetEmployerApplications(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", apps)
}

func (h *Handler) ApplicationsByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "jobID")
	if err != nil {
		h.errorResponse(w, r, "invalid job id")
		return
	}

	apps, err := h.repository.GetApplicationsByJob(r.Context(), jobID)
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", apps)
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid application id")
		return
	}

	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		h.errorResponse(w, r, "invalid application status")
		return
	}

	if err := h.repository.UpdateApplicationStatus(r.Context(), id, status); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "application status updated", nil)
}
