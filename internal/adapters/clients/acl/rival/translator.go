package rival

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

// ToDomainRival converts a backend RivalDTO to a domain Rival entity.
// Parses RFC3339 timestamps.
func ToDomainRival(dto *RivalDTO) domain.Rival {
	return domain.Rival{
		GitHubUserID:   dto.GithubUserID,
		GitHubUsername: dto.GithubUsername,
		AvatarURL:      dto.AvatarURL,
		AddedAt:        parseTime("created_at", dto.CreatedAt),
	}
}

// ToDomainRivalList converts a backend ListResponseDTO to a domain
// RivalList including the plan-quota metadata.
func ToDomainRivalList(dto ListResponseDTO) *domain.RivalList {
	rivals := make([]domain.Rival, len(dto.Rivals))
	for i := range dto.Rivals {
		rivals[i] = ToDomainRival(&dto.Rivals[i])
	}
	return &domain.RivalList{
		Rivals:    rivals,
		Count:     dto.Count,
		MaxRivals: dto.MaxRivals,
	}
}
