package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/bpohire/portal/internal/config"
	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/listing"
	"github.com/bpohire/portal/internal/repository"
	"github.com/bpohire/portal/internal/session"
)

type Handler struct {
	validate   *validator.Validate
	translator ut.Translator
	config     *config.Config
	repository *repository.Repository
	session    *session.Store
	listing    *listing.Store

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, sess *session.Store, lst *listing.Store) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		translator: trans,
		config:     cfg,
		repository: repo,
		session:    sess,
		listing:    lst,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Public pages
	h.Mux.Get("/", h.HomePage)
	h.Mux.Get("/about", h.AboutPage)
	h.Mux.Get("/contact", h.ContactPage)
	h.Mux.Get("/employers", h.EmployersPage)

	// Session lifecycle
	h.Mux.Get("/session", h.SessionInfo)
	h.Mux.Post("/login", h.Login)
	h.Mux.Post("/register", h.Register)
	h.Mux.Post("/logout", h.Logout)

	// Public job listing
	h.Mux.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.Post("/search", h.SearchJobs)
		r.Post("/clear-filters", h.ClearFilters)
		r.Get("/{id}", h.JobDetails)
	})

	// Role-gated views
	h.Mux.Route("/candidate", func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleCandidate))
		r.Get("/dashboard", h.CandidateDashboard)
		r.Post("/applications", h.ApplyForJob)
		r.Put("/applications/{id}/withdraw", h.WithdrawApplication)
	})

	h.Mux.Route("/employer", func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleEmployer))
		r.Get("/dashboard", h.EmployerDashboard)
		r.Post("/jobs", h.CreateJob)
		r.Put("/jobs/{id}", h.UpdateJob)
		r.Delete("/jobs/{id}", h.DeleteJob)
		r.Get("/applications", h.EmployerApplications)
		r.Get("/applications/job/{jobID}", h.ApplicationsByJob)
		r.Put("/applications/{id}/status", h.UpdateApplicationStatus)
	})

	h.Mux.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleAdmin))
			r.Get("/dashboard", h.AdminDashboard)
			r.Get("/candidates", h.AdminCandidates)
			r.Get("/employers", h.AdminEmployers)
			r.Get("/jobs", h.AdminJobs)
			r.Put("/employers/{id}/approve", h.ApproveEmployer)
			r.Put("/employers/{id}/block", h.BlockEmployer)
			r.Delete("/employers/{id}", h.DeleteEmployer)
			r.Put("/candidates/{id}/block", h.BlockCandidate)
			r.Delete("/candidates/{id}", h.DeleteCandidate)
			r.Put("/jobs/{id}/approve", h.ApproveJob)
			r.Put("/jobs/{id}/reject", h.RejectJob)
			r.Delete("/jobs/{id}", h.DeleteJobAdmin)
		})
	})
}
