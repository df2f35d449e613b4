package domain

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, "":
		return true
	}
	return false
}

type Shift string

const (
	ShiftDay        Shift = "DAY"
	ShiftNight      Shift = "NIGHT"
	ShiftRotational Shift = "ROTATIONAL"
	ShiftFlexible   Shift = "FLEXIBLE"
)

func (s Shift) Valid() bool {
	switch s {
	case ShiftDay, ShiftNight, ShiftRotational, ShiftFlexible, "":
		return true
	}
	return false
}

// JobStatus is the moderation state a posting goes through before it is
// publicly visible.
type JobStatus string

const (
	JobStatusPending  JobStatus = "PENDING"
	JobStatusApproved JobStatus = "APPROVED"
	JobStatusRejected JobStatus = "REJECTED"
)

type Job struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	City               string    `json:"city"`
	JobType            JobType   `json:"jobType"`
	Shift              Shift     `json:"shift"`
	IsVoice            bool      `json:"isVoice"`
	Salary             int64     `json:"salary"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements"`
	Benefits           string    `json:"benefits"`
	ExperienceRequired string    `json:"experienceRequired"`
	CreatedAt          time.Time `json:"createdAt"`
	Status             JobStatus `json:"status"`
}
