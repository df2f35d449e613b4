package domain

// PublicStats backs the marketing pages (home, employers).
type PublicStats struct {
	TotalJobs       int64 `json:"totalJobs"`
	TotalEmployers  int64 `json:"totalEmployers"`
	TotalCandidates int64 `json:"totalCandidates"`
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	TotalCandidates   int64 `json:"totalCandidates"`
	TotalEmployers    int64 `json:"totalEmployers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	PendingJobs       int64 `json:"pendingJobs"`
	PendingEmployers  int64 `json:"pendingEmployers"`
}

// Account is the admin moderation view of a candidate or employer record.
type Account struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Approved  bool   `json:"approved"`
	Blocked   bool   `json:"blocked"`
	CreatedAt string `json:"createdAt"`
}
