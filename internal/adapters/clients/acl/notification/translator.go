package notification

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

// ToDomainSetting converts a backend SettingDTO to a domain
// NotificationSetting. Parses RFC3339 timestamps.
func ToDomainSetting(dto *SettingDTO) domain.NotificationSetting {
	return domain.NotificationSetting{
		ID:          dto.ID,
		ChannelType: domain.ChannelType(dto.ChannelType),
		WebhookURL:  dto.WebhookURL,
		LineUserID:  dto.LINEUserID,
		IsEnabled:   dto.IsEnabled,
		CreatedAt:   parseTime("created_at", dto.CreatedAt),
		UpdatedAt:   parseTime("updated_at", dto.UpdatedAt),
	}
}

// ToDomainSettingList converts a backend SettingsListResponseDTO to a
// slice of domain NotificationSetting entities.
func ToDomainSettingList(dto SettingsListResponseDTO) []domain.NotificationSetting {
	settings := make([]domain.NotificationSetting, len(dto.Settings))
	for i := range dto.Settings {
		settings[i] = ToDomainSetting(&dto.Settings[i])
	}
	return settings
}

// ToCreateSettingRequest converts a domain NotificationSetting to a
// backend create-setting request.
func ToCreateSettingRequest(s domain.NotificationSetting) CreateSettingRequestDTO {
	return CreateSettingRequestDTO{
		ChannelType: string(s.ChannelType),
		WebhookURL:  s.WebhookURL,
		LINEUserID:  s.LineUserID,
	}
}

// ToUpdateSettingRequest converts a domain NotificationSetting to a
// backend update-setting request.
func ToUpdateSettingRequest(s domain.NotificationSetting) UpdateSettingRequestDTO {
	return UpdateSettingRequestDTO{
		IsEnabled:  s.IsEnabled,
		WebhookURL: s.WebhookURL,
		LINEUserID: s.LineUserID,
	}
}

// ToDomainSlackSetting converts a backend SlackSettingDTO to a domain
// SlackSetting. Parses RFC3339 timestamps.
func ToDomainSlackSetting(dto *SlackSettingDTO) *domain.SlackSetting {
	return &domain.SlackSetting{
		ID:         dto.ID,
		WebhookURL: dto.WebhookURL,
		IsEnabled:  dto.IsEnabled,
		CreatedAt:  parseTime("created_at", dto.CreatedAt),
		UpdatedAt:  parseTime("updated_at", dto.UpdatedAt),
	}
}
