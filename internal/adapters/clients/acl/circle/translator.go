package circle

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

// ToDomainCircle converts a backend CircleDTO to a domain Circle entity.
// Parses RFC3339 timestamps.
func ToDomainCircle(dto *CircleDTO) domain.Circle {
	members := make([]domain.CircleMember, len(dto.Members))
	for i, m := range dto.Members {
		members[i] = domain.CircleMember{
			GitHubUsername: m.GithubUsername,
			AvatarURL:      m.AvatarURL,
			JoinedAt:       parseTime("members.joined_at", m.JoinedAt),
		}
	}

	return domain.Circle{
		ID:         dto.ID,
		Name:       dto.Name,
		InviteCode: dto.InviteCode,
		IsOwner:    dto.IsOwner,
		Members:    members,
		CreatedAt:  parseTime("created_at", dto.CreatedAt),
	}
}

// ToDomainCircleList converts a backend ListResponseDTO to a domain
// CircleList including the plan-quota metadata.
func ToDomainCircleList(dto ListResponseDTO) *domain.CircleList {
	circles := make([]domain.Circle, len(dto.Circles))
	for i := range dto.Circles {
		circles[i] = ToDomainCircle(&dto.Circles[i])
	}
	return &domain.CircleList{
		Circles:    circles,
		Count:      dto.Count,
		MaxCircles: dto.MaxCircles,
	}
}
