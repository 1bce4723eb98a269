package domain

// Dashboard periods accepted by the backend.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// ValidPeriod reports whether p is a period the backend accepts.
func ValidPeriod(p string) bool {
	return p == PeriodWeekly || p == PeriodMonthly
}

// DailyCommitSummary is one day's commit count within a dashboard window.
type DailyCommitSummary struct {
	Date        string
	CommitCount int
}

// RepositoryCommitSummary is one repository's commit count within a
// dashboard window.
type RepositoryCommitSummary struct {
	Repository  string
	CommitCount int
}

// UserCommitStats aggregates a single user's commits over the dashboard
// window.
type UserCommitStats struct {
	GitHubUserID   uint64
	GitHubUsername string
	AvatarURL      string
	TotalCommits   int
	DailyStats     []DailyCommitSummary
	RepoStats      []RepositoryCommitSummary
}

// Dashboard is the commit comparison between the current user and their
// rivals for a weekly or monthly window.
type Dashboard struct {
	Period    string
	StartDate string
	EndDate   string
	MyStats   UserCommitStats
	Rivals    []UserCommitStats
}
