package activity

import "github.com/commitly/web/internal/domain"

// ToDomainStream converts a backend StreamResponseDTO to a domain
// ActivityStream.
func ToDomainStream(dto StreamResponseDTO) *domain.ActivityStream {
	items := make([]domain.ActivityItem, len(dto.Activities))
	for i, a := range dto.Activities {
		items[i] = domain.ActivityItem{
			GitHubUsername: a.GithubUsername,
			AvatarURL:      a.AvatarURL,
			Repository:     a.Repository,
			CommitCount:    a.CommitCount,
			Date:           a.Date,
		}
	}
	return &domain.ActivityStream{Activities: items}
}

// ToDomainRhythm converts a backend RhythmResponseDTO to a domain Rhythm.
func ToDomainRhythm(dto RhythmResponseDTO) *domain.Rhythm {
	users := make([]domain.UserRhythm, len(dto.Users))
	for i, u := range dto.Users {
		users[i] = domain.UserRhythm{
			GitHubUsername: u.GithubUsername,
			AvatarURL:      u.AvatarURL,
			PatternLabel:   u.PatternLabel,
			Weekly: domain.WeeklyRhythm{
				Mon: u.WeeklyRhythm.Mon,
				Tue: u.WeeklyRhythm.Tue,
				Wed: u.WeeklyRhythm.Wed,
				Thu: u.WeeklyRhythm.Thu,
				Fri: u.WeeklyRhythm.Fri,
				Sat: u.WeeklyRhythm.Sat,
				Sun: u.WeeklyRhythm.Sun,
			},
		}
	}
	return &domain.Rhythm{Users: users, Period: dto.Period}
}
