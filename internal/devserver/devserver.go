// Package devserver is an in-memory stand-in for the remote marketplace
// backend. It implements the REST surface the portal consumes, with seeded
// accounts and postings, so the portal can run and be tested without the real
// service. Nothing here persists across restarts.
package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Server struct {
	secret   []byte
	tokenTTL time.Duration
	validate *validator.Validate
	store    *memStore
	mux      *chi.Mux
}

func New(secret string, tokenTTL time.Duration) *Server {
	s := &Server{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		store:    newMemStore(),
		mux:      chi.NewRouter(),
	}
	s.store.seed()
	s.registerRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// The real backend serves under /api; the stub does the same so the portal's
// base URL works unchanged.
func (s *Server) registerRoutes() {
	s.mux.Route("/api", s.registerAPI)
}

func (s *Server) registerAPI(api chi.Router) {
	api.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/register/{kind}", s.register)
		r.With(s.auth).Get("/verify", s.verify)
	})

	api.Route("/public", func(r chi.Router) {
		r.Get("/jobs", s.listJobs)
		r.Get("/jobs/search", s.listJobs)
		r.Get("/jobs/{id}", s.jobByID)
		r.Get("/stats", s.publicStats)
	})

	api.Route("/candidate", func(r chi.Router) {
		r.Use(s.auth)
		r.Use(s.requireRole("CANDIDATE"))
		r.Post("/applications", s.apply)
		r.Get("/applications", s.candidateApplications)
		r.Put("/applications/{id}/withdraw", s.withdraw)
	})

	api.Route("/employer", func(r chi.Router) {
		r.Use(s.auth)
		r.Use(s.requireRole("EMPLOYER"))
		r.Post("/jobs", s.createJob)
		r.Get("/jobs", s.employerJobs)
		r.Put("/jobs/{id}", s.updateJob)
		r.Delete("/jobs/{id}", s.deleteJob)
		r.Get("/applications", s.employerApplications)
		r.Get("/applications/job/{jobID}", s.applicationsByJob)
		r.Put("/applications/{id}/status", s.updateApplicationStatus)
	})

	api.Route("/admin", func(r chi.Router) {
		r.Use(s.auth)
		r.Use(s.requireRole("ADMIN"))
		r.Get("/dashboard/stats", s.dashboardStats)
		r.Get("/candidates", s.allCandidates)
		r.Get("/employers", s.allEmployers)
		r.Get("/jobs", s.allJobs)
		r.Put("/employers/{id}/approve", s.approveEmployer)
		r.Put("/employers/{id}/block", s.blockEmployer)
		r.Delete("/employers/{id}", s.deleteEmployer)
		r.Put("/candidates/{id}/block", s.blockCandidate)
		r.Delete("/candidates/{id}", s.deleteCandidate)
		r.Put("/jobs/{id}/approve", s.approveJob)
		r.Put("/jobs/{id}/reject", s.rejectJob)
		r.Delete("/jobs/{id}", s.deleteJobAdmin)
	})
}

func (s *Server) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("devserver: failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
