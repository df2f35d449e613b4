package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bpohire/portal/internal/domain"
)

// JobInput is the employer-editable subset of a posting. Status and company
// are assigned server-side.
type JobInput struct {
	Title              string         `json:"title"`
	City               string         `json:"city"`
	JobType            domain.JobType `json:"jobType"`
	Shift              domain.Shift   `json:"shift"`
	IsVoice            bool           `json:"isVoice"`
	Salary             int64          `json:"salary"`
	Description        string         `json:"description"`
	Requirements       string         `json:"requirements"`
	Benefits           string         `json:"benefits"`
	ExperienceRequired string         `json:"experienceRequired"`
}

func (r *Repository) GetAllJobs(ctx context.Context, filters domain.FilterSet) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.client.Do(ctx, http.MethodGet, "/public/jobs", filters.Query(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) SearchJobs(ctx context.Context, filters domain.FilterSet) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.client.Do(ctx, http.MethodGet, "/public/jobs/search", filters.Query(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) GetJobByID(ctx context.Context, id int64) (*domain.Job, error) {
	job := &domain.Job{}
	path := fmt.Sprintf("/public/jobs/%d", id)
	if err := r.client.Do(ctx, http.MethodGet, path, nil, nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) GetStats(ctx context.Context) (*domain.PublicStats, error) {
	stats := &domain.PublicStats{}
	if err := r.client.Do(ctx, http.MethodGet, "/public/stats", nil, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) CreateJob(ctx context.Context, input JobInput) (*domain.Job, error) {
	job := &domain.Job{}
	if err := r.client.Do(ctx, http.MethodPost, "/employer/jobs", nil, input, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) UpdateJob(ctx context.Context, id int64, input JobInput) (*domain.Job, error) {
	job := &domain.Job{}
	path := fmt.Sprintf("/employer/jobs/%d", id)
	if err := r.client.Do(ctx, http.MethodPut, path, nil, input, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) DeleteJob(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/employer/jobs/%d", id)
	return r.client.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (r *Repository) GetEmployerJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.client.Do(ctx, http.MethodGet, "/employer/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
