package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bpohire/portal/internal/domain"
)

func (r *Repository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	if err := r.client.Do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) GetAllCandidates(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := r.client.Do(ctx, http.MethodGet, "/admin/candidates", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) GetAllEmployers(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := r.client.Do(ctx, http.MethodGet, "/admin/employers", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) GetAllJobsAdmin(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.client.Do(ctx, http.MethodGet, "/admin/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) ApproveEmployer(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/employers/%d/approve", id), nil, nil, nil)
}

func (r *Repository) BlockEmployer(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/employers/%d/block", id), nil, nil, nil)
}

func (r *Repository) DeleteEmployer(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/employers/%d", id), nil, nil, nil)
}

func (r *Repository) BlockCandidate(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/candidates/%d/block", id), nil, nil, nil)
}

func (r *Repository) DeleteCandidate(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/candidates/%d", id), nil, nil, nil)
}

func (r *Repository) ApproveJob(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/jobs/%d/approve", id), nil, nil, nil)
}

func (r *Repository) RejectJob(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/jobs/%d/reject", id), nil, nil, nil)
}

func (r *Repository) DeleteJobAdmin(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/jobs/%d", id), nil, nil, nil)
}
