package handler

import (
	"log/slog"
	"net/http"

	"github.com/bpohire/portal/internal/domain"
)

// The static pages return their copy plus the session snapshot so the shell
// can render the right header state without a second round trip.

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	var stats *domain.PublicStats
	s, err := h.repository.GetStats(r.Context())
	if err != nil {
		// The home page renders without the counters rather than failing.
		slog.Warn("failed to load public stats", "error", err)
	} else {
		stats = s
	}

	h.successResponse(w, r, "", struct {
		Stats   *domain.PublicStats `json:"stats"`
		Session sessionData         `json:"session"`
	}{Stats: stats, Session: h.sessionData()})
}

func (h *Handler) EmployersPage(w http.ResponseWriter, r *http.Request) {
	var stats *domain.PublicStats
	s, err := h.repository.GetStats(r.Context())
	if err != nil {
		slog.Warn("failed to load public stats", "error", err)
	} else {
		stats = s
	}

	h.successResponse(w, r, "", struct {
		Headline string              `json:"headline"`
		Stats    *domain.PublicStats `json:"stats"`
		Session  sessionData         `json:"session"`
	}{
		Headline: "Hire trained BPO talent without the sourcing overhead",
		Stats:    stats,
		Session:  h.sessionData(),
	})
}

func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "", struct {
		Mission string      `json:"mission"`
		Session sessionData `json:"session"`
	}{
		Mission: "We connect BPO candidates with verified employers across voice and non-voice processes.",
		Session: h.sessionData(),
	})
}

func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "", struct {
		Email   string      `json:"email"`
		Phone   string      `json:"phone"`
		Session sessionData `json:"session"`
	}{
		Email:   "support@bpohire.example",
		Phone:   "+91 22 4000 0000",
		Session: h.sessionData(),
	})
}
