package signal

import "github.com/commitly/web/internal/domain"

// ToDomainSignals converts a backend ListResponseDTO to a slice of
// domain Signal entities.
func ToDomainSignals(dto ListResponseDTO) []domain.Signal {
	signals := make([]domain.Signal, len(dto.Signals))
	for i, s := range dto.Signals {
		users := make([]domain.SignalUser, len(s.Users))
		for j, u := range s.Users {
			users[j] = domain.SignalUser{
				GitHubUsername: u.GithubUsername,
				AvatarURL:      u.AvatarURL,
			}
		}
		signals[i] = domain.Signal{
			Type:       s.Type,
			Date:       s.Date,
			Users:      users,
			Detail:     s.Detail,
			CircleID:   s.CircleID,
			CircleName: s.CircleName,
		}
	}
	return signals
}
