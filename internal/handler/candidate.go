package handler

import (
	"net/http"

	"github.com/bpohire/portal/internal/domain"
)

func (h *Handler) CandidateDashboard(w http.ResponseWriter, r *http.Request) {
	apps, err := h.repository.GetCandidateApplications(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	identity := r.Context().Value(IdentityCtxKey).(*domain.Identity)
	h.successResponse(w, r, "", struct {
		Identity     *domain.Identity     `json:"identity"`
		Applications []domain.Application `json:"applications"`
	}{Identity: identity, Applications: apps})
}

func (h *Handler) ApplyForJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID       int64  `json:"jobId" validate:"required"`
		CoverLetter string `json:"coverLetter" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	app, err := h.repository.ApplyForJob(r.Context(), req.JobID, req.CoverLetter)
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "application submitted", app)
}

func (h *Handler) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid application id")
		return
	}

	if err := h.repository.WithdrawApplication(r.Context(), id); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "application withdrawn", nil)
}
