package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bpohire/portal/internal/domain"
)

func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)

	var req struct {
		JobID       int64  `json:"jobId" validate:"required"`
		CoverLetter string `json:"coverLetter" validate:"required"`
	}
	if err := s.readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "jobId and coverLetter are required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	job, ok := s.store.jobs[req.JobID]
	if !ok || job.Status != domain.JobStatusApproved {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	for _, app := range s.store.applications {
		if app.Candidate.ID == a.ID && app.Job.ID == req.JobID {
			s.writeError(w, http.StatusBadRequest, "You have already applied to this job")
			return
		}
	}

	app := &domain.Application{
		ID:          s.store.id(),
		Job:         *job,
		Candidate:   a.identity(),
		Status:      domain.ApplicationStatusApplied,
		CoverLetter: req.CoverLetter,
		CreatedAt:   time.Now(),
	}
	s.store.applications[app.ID] = app

	s.writeJSON(w, http.StatusOK, *app)
}

func (s *Server) candidateApplications(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)

	s.store.mu.Lock()
	apps := make([]domain.Application, 0)
	for _, app := range s.store.applications {
		if app.Candidate.ID == a.ID {
			apps = append(apps, *app)
		}
	}
	s.store.mu.Unlock()

	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	s.writeJSON(w, http.StatusOK, apps)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	app, ok := s.store.applications[id]
	if !ok || app.Candidate.ID != a.ID {
		s.writeError(w, http.StatusNotFound, "application not found")
		return
	}
	delete(s.store.applications, id)

	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) employerApplications(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)

	s.store.mu.Lock()
	apps := make([]domain.Application, 0)
	for _, app := range s.store.applications {
		if s.store.jobOwners[app.Job.ID] == a.ID {
			apps = append(apps, *app)
		}
	}
	s.store.mu.Unlock()

	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	s.writeJSON(w, http.StatusOK, apps)
}

func (s *Server) applicationsByJob(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.jobOwners[jobID] != a.ID {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	apps := make([]domain.Application, 0)
	for _, app := range s.store.applications {
		if app.Job.ID == jobID {
			apps = append(apps, *app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	s.writeJSON(w, http.StatusOK, apps)
}

func (s *Server) updateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		s.writeError(w, http.StatusBadRequest, "invalid application status")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	app, ok := s.store.applications[id]
	if !ok || s.store.jobOwners[app.Job.ID] != a.ID {
		s.writeError(w, http.StatusNotFound, "application not found")
		return
	}
	app.Status = status

	s.writeJSON(w, http.StatusOK, *app)
}
