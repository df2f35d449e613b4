package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bpohire/portal/internal/domain"
)

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	stats := domain.DashboardStats{
		TotalApplications: int64(len(s.store.applications)),
	}
	for _, a := range s.store.accounts {
		switch a.Role {
		case domain.RoleCandidate:
			stats.TotalCandidates++
		case domain.RoleEmployer:
			stats.TotalEmployers++
			if !a.Approved {
				stats.PendingEmployers++
			}
		}
	}
	for _, job := range s.store.jobs {
		stats.TotalJobs++
		if job.Status == domain.JobStatusPending {
			stats.PendingJobs++
		}
	}
	s.store.mu.Unlock()

	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) accountsByRole(role domain.Role) []domain.Account {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	accounts := make([]domain.Account, 0)
	for _, a := range s.store.accounts {
		if a.Role != role {
			continue
		}
		accounts = append(accounts, domain.Account{
			ID:        a.ID,
			Name:      a.Name,
			Email:     a.Email,
			Role:      a.Role,
			Approved:  a.Approved,
			Blocked:   a.Blocked,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

func (s *Server) allCandidates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.accountsByRole(domain.RoleCandidate))
}

func (s *Server) allEmployers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.accountsByRole(domain.RoleEmployer))
}

func (s *Server) allJobs(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	jobs := make([]domain.Job, 0, len(s.store.jobs))
	for _, job := range s.store.jobs {
		jobs = append(jobs, *job)
	}
	s.store.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	s.writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) mutateAccount(w http.ResponseWriter, r *http.Request, role domain.Role, fn func(*account)) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	a, ok := s.store.accounts[id]
	if !ok || a.Role != role {
		s.writeError(w, http.StatusNotFound, "account not found")
		return
	}
	fn(a)

	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) approveEmployer(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, domain.RoleEmployer, func(a *account) { a.Approved = true })
}

func (s *Server) blockEmployer(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, domain.RoleEmployer, func(a *account) { a.Blocked = true })
}

func (s *Server) blockCandidate(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, domain.RoleCandidate, func(a *account) { a.Blocked = true })
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request, role domain.Role) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	a, ok := s.store.accounts[id]
	if !ok || a.Role != role {
		s.writeError(w, http.StatusNotFound, "account not found")
		return
	}
	delete(s.store.accounts, id)

	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) deleteEmployer(w http.ResponseWriter, r *http.Request) {
	s.deleteAccount(w, r, domain.RoleEmployer)
}

func (s *Server) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	s.deleteAccount(w, r, domain.RoleCandidate)
}

func (s *Server) mutateJob(w http.ResponseWriter, r *http.Request, fn func(*domain.Job) bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	job, ok := s.store.jobs[id]
	if !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if !fn(job) {
		delete(s.store.jobs, id)
		delete(s.store.jobOwners, id)
	}

	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) approveJob(w http.ResponseWriter, r *http.Request) {
	s.mutateJob(w, r, func(j *domain.Job) bool {
		j.Status = domain.JobStatusApproved
		return true
	})
}

func (s *Server) rejectJob(w http.ResponseWriter, r *http.Request) {
	s.mutateJob(w, r, func(j *domain.Job) bool {
		j.Status = domain.JobStatusRejected
		return true
	})
}

func (s *Server) deleteJobAdmin(w http.ResponseWriter, r *http.Request) {
	s.mutateJob(w, r, func(j *domain.Job) bool { return false })
}
