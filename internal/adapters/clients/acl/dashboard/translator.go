package dashboard

import "github.com/commitly/web/internal/domain"

// ToDomainDashboard converts a backend ResponseDTO to a domain Dashboard.
func ToDomainDashboard(dto ResponseDTO) *domain.Dashboard {
	rivals := make([]domain.UserCommitStats, len(dto.Rivals))
	for i := range dto.Rivals {
		rivals[i] = toDomainStats(&dto.Rivals[i])
	}
	return &domain.Dashboard{
		Period:    dto.Period,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
		MyStats:   toDomainStats(&dto.MyStats),
		Rivals:    rivals,
	}
}

func toDomainStats(dto *UserStatsDTO) domain.UserCommitStats {
	daily := make([]domain.DailyCommitSummary, len(dto.DailyStats))
	for i, d := range dto.DailyStats {
		daily[i] = domain.DailyCommitSummary{Date: d.Date, CommitCount: d.CommitCount}
	}
	repos := make([]domain.RepositoryCommitSummary, len(dto.RepoStats))
	for i, r := range dto.RepoStats {
		repos[i] = domain.RepositoryCommitSummary{Repository: r.Repository, CommitCount: r.CommitCount}
	}
	return domain.UserCommitStats{
		GitHubUserID:   dto.GithubUserID,
		GitHubUsername: dto.GithubUsername,
		AvatarURL:      dto.AvatarURL,
		TotalCommits:   dto.TotalCommits,
		DailyStats:     daily,
		RepoStats:      repos,
	}
}
