package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bpohire/portal/internal/domain"
)

func parseFilters(r *http.Request) (domain.FilterSet, error) {
	q := r.URL.Query()
	f := domain.FilterSet{
		Title:   q.Get("title"),
		City:    q.Get("city"),
		JobType: domain.JobType(q.Get("jobType")),
		Shift:   domain.Shift(q.Get("shift")),
	}
	if raw := q.Get("isVoice"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, err
		}
		f.IsVoice = &v
	}
	if raw := q.Get("minSalary"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.MinSalary = v
	}
	if raw := q.Get("maxSalary"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.MaxSalary = v
	}
	return f, nil
}

// listJobs backs both /public/jobs and /public/jobs/search; the real backend
// treats them identically apart from analytics.
func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	s.store.mu.Lock()
	jobs := make([]domain.Job, 0)
	for _, job := range s.store.jobs {
		if job.Status != domain.JobStatusApproved {
			continue
		}
		if matches(job, filters) {
			jobs = append(jobs, *job)
		}
	}
	s.store.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	s.writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) jobByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	s.store.mu.Lock()
	job, ok := s.store.jobs[id]
	var out domain.Job
	if ok {
		out = *job
	}
	s.store.mu.Unlock()

	if !ok || out.Status != domain.JobStatusApproved {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) publicStats(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	stats := domain.PublicStats{}
	for _, job := range s.store.jobs {
		if job.Status == domain.JobStatusApproved {
			stats.TotalJobs++
		}
	}
	for _, a := range s.store.accounts {
		switch a.Role {
		case domain.RoleEmployer:
			stats.TotalEmployers++
		case domain.RoleCandidate:
			stats.TotalCandidates++
		}
	}
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, stats)
}

type jobInput struct {
	Title              string         `json:"title" validate:"required"`
	City               string         `json:"city" validate:"required"`
	JobType            domain.JobType `json:"jobType" validate:"required"`
	Shift              domain.Shift   `json:"shift" validate:"required"`
	IsVoice            bool           `json:"isVoice"`
	Salary             int64          `json:"salary" validate:"required,gt=0"`
	Description        string         `json:"description" validate:"required"`
	Requirements       string         `json:"requirements"`
	Benefits           string         `json:"benefits"`
	ExperienceRequired string         `json:"experienceRequired"`
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)

	var req jobInput
	if err := s.readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job payload")
		return
	}
	if !req.JobType.Valid() || !req.Shift.Valid() {
		s.writeError(w, http.StatusBadRequest, "invalid job type or shift")
		return
	}

	s.store.mu.Lock()
	job := &domain.Job{
		ID:                 s.store.id(),
		Title:              req.Title,
		Company:            a.Company,
		City:               req.City,
		JobType:            req.JobType,
		Shift:              req.Shift,
		IsVoice:            req.IsVoice,
		Salary:             req.Salary,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Benefits:           req.Benefits,
		ExperienceRequired: req.ExperienceRequired,
		CreatedAt:          time.Now(),
		// New postings wait for admin approval before going public.
		Status: domain.JobStatusPending,
	}
	s.store.jobs[job.ID] = job
	s.store.jobOwners[job.ID] = a.ID
	out := *job
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) employerJobs(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)

	s.store.mu.Lock()
	jobs := make([]domain.Job, 0)
	for id, owner := range s.store.jobOwners {
		if owner == a.ID {
			jobs = append(jobs, *s.store.jobs[id])
		}
	}
	s.store.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	s.writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req jobInput
	if err := s.readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job payload")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	job, ok := s.store.jobs[id]
	if !ok || s.store.jobOwners[id] != a.ID {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	job.Title = req.Title
	job.City = req.City
	job.JobType = req.JobType
	job.Shift = req.Shift
	job.IsVoice = req.IsVoice
	job.Salary = req.Salary
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Benefits = req.Benefits
	job.ExperienceRequired = req.ExperienceRequired

	s.writeJSON(w, http.StatusOK, *job)
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.jobs[id]; !ok || s.store.jobOwners[id] != a.ID {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	delete(s.store.jobs, id)
	delete(s.store.jobOwners, id)

	s.writeJSON(w, http.StatusOK, nil)
}
