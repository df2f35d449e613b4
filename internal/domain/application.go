package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusInterviewed, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          int64             `json:"id"`
	Job         Job               `json:"job"`
	Candidate   Identity          `json:"candidate"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter"`
	CreatedAt   time.Time         `json:"createdAt"`
}
