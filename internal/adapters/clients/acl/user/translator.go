package user

import (
	"log/slog"
	"time"

	"github.com/commitly/web/internal/domain"
)

// parseTime parses an RFC3339 timestamp from the backend, degrading to
// the zero time on malformed input so one bad field does not fail the
// whole response.
func parseTime(field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		slog.Warn("malformed timestamp in backend response",
			slog.String("field", field),
			slog.Any("error", err),
		)
		return time.Time{}
	}
	return t
}

// ToAuthCallbackRequest converts a domain GitHubProfile to a backend
// AuthCallbackRequest.
func ToAuthCallbackRequest(p domain.GitHubProfile) AuthCallbackRequestDTO {
	return AuthCallbackRequestDTO{
		GithubUserID:   p.GitHubUserID,
		GithubUsername: p.GitHubUsername,
		Email:          p.Email,
		AvatarURL:      p.AvatarURL,
	}
}

// ToDomainUser converts a backend UserDTO to a domain User entity.
// Parses RFC3339 timestamps.
func ToDomainUser(dto *UserDTO) domain.User {
	return domain.User{
		ID:             dto.ID,
		GitHubUserID:   dto.GithubUserID,
		GitHubUsername: dto.GithubUsername,
		AvatarURL:      dto.AvatarURL,
		CreatedAt:      parseTime("created_at", dto.CreatedAt),
	}
}
