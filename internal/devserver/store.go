package devserver

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bpohire/portal/internal/domain"
)

// Seeded accounts, exported so tests and local runs can log in without
// poking at internals. Not real credentials.
const (
	SeedAdminEmail     = "admin@bpohire.test"
	SeedEmployerEmail  = "hr@zenithbpo.test"
	SeedCandidateEmail = "asha@bpohire.test"
	SeedPassword       = "let-me-in-123"
)

type account struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Company      string
	PasswordHash string
	Role         domain.Role
	Approved     bool
	Blocked      bool
	CreatedAt    time.Time
}

func (a *account) identity() domain.Identity {
	return domain.Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type memStore struct {
	mu           sync.Mutex
	accounts     map[int64]*account
	jobs         map[int64]*domain.Job
	jobOwners    map[int64]int64
	applications map[int64]*domain.Application
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		accounts:     make(map[int64]*account),
		jobs:         make(map[int64]*domain.Job),
		jobOwners:    make(map[int64]int64),
		applications: make(map[int64]*domain.Application),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) accountByEmail(email string) *account {
	for _, a := range m.accounts {
		if a.Email == email {
			return a
		}
	}
	return nil
}

// seed installs one account per role plus a small posting board. Two of the
// approved jobs deliberately match {FULL_TIME, Mumbai}.
func (m *memStore) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	admin := &account{
		ID: m.id(), Name: "Portal Admin", Email: SeedAdminEmail,
		PasswordHash: string(hash), Role: domain.RoleAdmin, Approved: true, CreatedAt: now,
	}
	employer := &account{
		ID: m.id(), Name: "Zenith BPO HR", Email: SeedEmployerEmail, Company: "Zenith BPO",
		PasswordHash: string(hash), Role: domain.RoleEmployer, Approved: true, CreatedAt: now,
	}
	candidate := &account{
		ID: m.id(), Name: "Asha Nair", Email: SeedCandidateEmail,
		PasswordHash: string(hash), Role: domain.RoleCandidate, Approved: true, CreatedAt: now,
	}
	m.accounts[admin.ID] = admin
	m.accounts[employer.ID] = employer
	m.accounts[candidate.ID] = candidate

	seedJobs := []domain.Job{
		{
			Title: "Customer Support Executive", Company: "Zenith BPO", City: "Mumbai",
			JobType: domain.JobTypeFullTime, Shift: domain.ShiftDay, IsVoice: true,
			Salary: 28000, Description: "Inbound voice process for a telecom account.",
			Requirements: "Fluent English and Hindi", ExperienceRequired: "0-2 years",
			Status: domain.JobStatusApproved,
		},
		{
			Title: "Technical Support Associate", Company: "Zenith BPO", City: "Mumbai",
			JobType: domain.JobTypeFullTime, Shift: domain.ShiftNight, IsVoice: true,
			Salary: 34000, Description: "Troubleshooting for an ISP account.",
			Requirements: "Basic networking knowledge", ExperienceRequired: "1-3 years",
			Status: domain.JobStatusApproved,
		},
		{
			Title: "Chat Support Agent", Company: "Zenith BPO", City: "Pune",
			JobType: domain.JobTypePartTime, Shift: domain.ShiftFlexible, IsVoice: false,
			Salary: 18000, Description: "Non-voice chat support, rotating weekends.",
			Status: domain.JobStatusApproved,
		},
		{
			Title: "Back Office Executive", Company: "Zenith BPO", City: "Chennai",
			JobType: domain.JobTypeContract, Shift: domain.ShiftDay, IsVoice: false,
			Salary: 22000, Description: "Data processing, awaiting moderation.",
			Status: domain.JobStatusPending,
		},
	}
	for i := range seedJobs {
		job := seedJobs[i]
		job.ID = m.id()
		job.CreatedAt = now
		m.jobs[job.ID] = &job
		m.jobOwners[job.ID] = employer.ID
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

func matches(job *domain.Job, f domain.FilterSet) bool {
	if f.Title != "" && !containsFold(job.Title, f.Title) {
		return false
	}
	if f.City != "" && !equalFold(job.City, f.City) {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.Shift != "" && job.Shift != f.Shift {
		return false
	}
	if f.IsVoice != nil && job.IsVoice != *f.IsVoice {
		return false
	}
	if f.MinSalary > 0 && job.Salary < f.MinSalary {
		return false
	}
	if f.MaxSalary > 0 && job.Salary > f.MaxSalary {
		return false
	}
	return true
}
