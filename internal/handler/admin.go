package handler

import (
	"context"
	"net/http"
)

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repository.GetDashboardStats(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", stats)
}

func (h *Handler) AdminCandidates(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repository.GetAllCandidates(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", accounts)
}

func (h *Handler) AdminEmployers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repository.GetAllEmployers(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", accounts)
}

func (h *Handler) AdminJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobsAdmin(r.Context())
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "", jobs)
}

// moderate wraps the one-shot moderation actions, which all take a path id
// and return no payload.
func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, action func(context.Context, int64) error, msg string) {
	id, err := pathID(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid id")
		return
	}

	if err := action(r.Context(), id); err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, msg, nil)
}

func (h *Handler) ApproveEmployer(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.ApproveEmployer, "employer approved")
}

func (h *Handler) BlockEmployer(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.BlockEmployer, "employer blocked")
}

func (h *Handler) DeleteEmployer(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.DeleteEmployer, "employer deleted")
}

func (h *Handler) BlockCandidate(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.BlockCandidate, "candidate blocked")
}

func (h *Handler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.DeleteCandidate, "candidate deleted")
}

func (h *Handler) ApproveJob(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.ApproveJob, "job approved")
}

func (h *Handler) RejectJob(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.RejectJob, "job rejected")
}

func (h *Handler) DeleteJobAdmin(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.repository.DeleteJobAdmin, "job deleted")
}
