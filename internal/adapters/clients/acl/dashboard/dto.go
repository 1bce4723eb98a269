// Package dashboard implements the Anti-Corruption Layer translators
// for the backend's dashboard resources.
package dashboard

// DailyStatDTO matches the backend DailyCommitSummary schema.
type DailyStatDTO struct {
	Date        string `json:"date"`
	CommitCount int    `json:"commit_count"`
}

// RepoStatDTO matches the backend RepositoryCommitSummary schema.
type RepoStatDTO struct {
	Repository  string `json:"repository"`
	CommitCount int    `json:"commit_count"`
}

// UserStatsDTO matches the backend UserCommitStats schema.
type UserStatsDTO struct {
	GithubUserID   uint64         `json:"github_user_id"`
	GithubUsername string         `json:"github_username"`
	AvatarURL      string         `json:"avatar_url"`
	TotalCommits   int            `json:"total_commits"`
	DailyStats     []DailyStatDTO `json:"daily_stats"`
	RepoStats      []RepoStatDTO  `json:"repo_stats"`
}

// ResponseDTO matches the backend DashboardData schema.
type ResponseDTO struct {
	Period    string         `json:"period"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	MyStats   UserStatsDTO   `json:"my_stats"`
	Rivals    []UserStatsDTO `json:"rivals"`
}
