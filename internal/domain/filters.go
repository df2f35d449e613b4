package domain

import (
	"net/url"
	"strconv"
)

// FilterSet is the job search criteria. The zero value is the all-empty
// default, meaning "no filtering". IsVoice is tri-state: nil means either.
type FilterSet struct {
	Title     string  `json:"title"`
	City      string  `json:"city"`
	JobType   JobType `json:"jobType"`
	Shift     Shift   `json:"shift"`
	IsVoice   *bool   `json:"isVoice"`
	MinSalary int64   `json:"minSalary"`
	MaxSalary int64   `json:"maxSalary"`
}

func (f FilterSet) IsZero() bool {
	return f.Title == "" && f.City == "" && f.JobType == "" && f.Shift == "" &&
		f.IsVoice == nil && f.MinSalary == 0 && f.MaxSalary == 0
}

// Query encodes the filter set as backend query parameters, omitting unset
// fields so an all-empty set yields an unqualified listing request.
func (f FilterSet) Query() url.Values {
	q := url.Values{}
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.JobType != "" {
		q.Set("jobType", string(f.JobType))
	}
	if f.Shift != "" {
		q.Set("shift", string(f.Shift))
	}
	if f.IsVoice != nil {
		q.Set("isVoice", strconv.FormatBool(*f.IsVoice))
	}
	if f.MinSalary > 0 {
		q.Set("minSalary", strconv.FormatInt(f.MinSalary, 10))
	}
	if f.MaxSalary > 0 {
		q.Set("maxSalary", strconv.FormatInt(f.MaxSalary, 10))
	}
	return q
}

func (f FilterSet) Valid() bool {
	if !f.JobType.Valid() || !f.Shift.Valid() {
		return false
	}
	if f.MinSalary < 0 || f.MaxSalary < 0 {
		return false
	}
	if f.MinSalary > 0 && f.MaxSalary > 0 && f.MinSalary > f.MaxSalary {
		return false
	}
	return true
}
