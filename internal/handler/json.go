package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/guard"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// notFoundResponse is a view state, not an error toast: single-resource
// pages render it explicitly.
func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusNotFound, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

// backendError renders a backend-call failure according to the error
// taxonomy. Unauthorized forces navigation to login; the session was already
// torn down by the transport policy.
func (h *Handler) backendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsUnauthorized(err):
		http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
	case domain.IsNotFound(err):
		h.notFoundResponse(w, r, "not found")
	case domain.IsTransport(err):
		h.errorResponse(w, r, "The service is temporarily unreachable. Please try again.")
	default:
		apiErr := &domain.APIError{}
		if errors.As(err, &apiErr) {
			h.errorResponse(w, r, apiErr.Message)
			return
		}
		h.internalServerError(w, r, err)
	}
}
