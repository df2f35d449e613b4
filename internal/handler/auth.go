package handler

import (
	"net/http"
	"time"

	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/guard"
	"github.com/bpohire/portal/internal/repository"
	"github.com/bpohire/portal/internal/session"
)

type sessionData struct {
	State     session.State    `json:"state"`
	Identity  *domain.Identity `json:"identity"`
	Dashboard string           `json:"dashboard,omitempty"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
}

func (h *Handler) sessionData() sessionData {
	snap := h.session.Snapshot()
	data := sessionData{State: snap.State, Identity: snap.Identity}
	if snap.Identity != nil {
		data.Dashboard = guard.DashboardPath(snap.Identity.Role)
	}
	if exp, ok := h.session.ExpiryHint(); ok {
		data.ExpiresAt = &exp
	}
	return data
}

func (h *Handler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "", h.sessionData())
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := h.session.Login(r.Context(), req.Email, req.Password)
	if !result.OK {
		h.errorResponse(w, r, result.Message)
		return
	}

	h.successResponse(w, r, "logged in", h.sessionData())
}

// AdminLogin is the moderation console's entrance: the same login flow, but
// an account without the admin role is rejected and logged straight back out.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := h.session.Login(r.Context(), req.Email, req.Password)
	if !result.OK {
		h.errorResponse(w, r, result.Message)
		return
	}

	if !h.session.IsAdmin() {
		h.session.Logout()
		h.errorResponse(w, r, "This account has no administrator access")
		return
	}

	h.successResponse(w, r, "logged in", h.sessionData())
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		Phone       string `json:"phone"`
		Company     string `json:"company" validate:"required_if=AccountKind employer"`
		AccountKind string `json:"accountKind" validate:"required,oneof=candidate employer"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	payload := repository.RegisterPayload{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Company:  req.Company,
	}

	result := h.session.Register(r.Context(), payload, domain.AccountKind(req.AccountKind))
	if !result.OK {
		h.errorResponse(w, r, result.Message)
		return
	}

	h.successResponse(w, r, "registered", h.sessionData())
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	h.successResponse(w, r, "logged out", nil)
}
