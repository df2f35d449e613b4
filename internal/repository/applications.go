package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bpohire/portal/internal/domain"
)

func (r *Repository) ApplyForJob(ctx context.Context, jobID int64, coverLetter string) (*domain.Application, error) {
	req := struct {
		JobID       int64  `json:"jobId"`
		CoverLetter string `json:"coverLetter"`
	}{JobID: jobID, CoverLetter: coverLetter}

	app := &domain.Application{}
	if err := r.client.Do(ctx, http.MethodPost, "/candidate/applications", nil, req, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetCandidateApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := r.client.Do(ctx, http.MethodGet, "/candidate/applications", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) WithdrawApplication(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/candidate/applications/%d/withdraw", id)
	return r.client.Do(ctx, http.MethodPut, path, nil, nil, nil)
}

func (r *Repository) GetEmployerApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := r.client.Do(ctx, http.MethodGet, "/employer/applications", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) GetApplicationsByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	var apps []domain.Application
	path := fmt.Sprintf("/employer/applications/job/%d", jobID)
	if err := r.client.Do(ctx, http.MethodGet, path, nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application through the hiring pipeline.
// The backend takes the new status as a query parameter, not a body.
func (r *Repository) UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	path := fmt.Sprintf("/employer/applications/%d/status", id)
	query := url.Values{}
	query.Set("status", string(status))
	return r.client.Do(ctx, http.MethodPut, path, query, nil, nil)
}
