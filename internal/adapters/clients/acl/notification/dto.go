// Package notification implements the Anti-Corruption Layer translators
// for the backend's notification settings resources.
package notification

// SettingDTO matches the backend NotificationSettingResponse schema.
type SettingDTO struct {
	ID          uint64 `json:"id"`
	ChannelType string `json:"channel_type"`
	WebhookURL  string `json:"webhook_url"`
	LINEUserID  string `json:"line_user_id"`
	IsEnabled   bool   `json:"is_enabled"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// SettingsListResponseDTO matches the backend notification settings list
// schema.
type SettingsListResponseDTO struct {
	Settings []SettingDTO `json:"settings"`
}

// CreateSettingRequestDTO matches the backend create-setting request
// schema.
type CreateSettingRequestDTO struct {
	ChannelType string `json:"channel_type"`
	WebhookURL  string `json:"webhook_url"`
	LINEUserID  string `json:"line_user_id"`
}

// UpdateSettingRequestDTO matches the backend update-setting request
// schema.
type UpdateSettingRequestDTO struct {
	IsEnabled  bool   `json:"is_enabled"`
	WebhookURL string `json:"webhook_url"`
	LINEUserID string `json:"line_user_id"`
}

// SlackSettingDTO matches the backend SlackNotificationSettingResponse
// schema.
type SlackSettingDTO struct {
	ID         uint64 `json:"id"`
	WebhookURL string `json:"webhook_url"`
	IsEnabled  bool   `json:"is_enabled"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// CreateSlackRequestDTO matches the backend CreateSlackNotificationRequest
// schema.
type CreateSlackRequestDTO struct {
	WebhookURL string `json:"webhook_url"`
}

// UpdateSlackEnabledRequestDTO matches the backend UpdateEnabledRequest
// schema.
type UpdateSlackEnabledRequestDTO struct {
	IsEnabled bool `json:"is_enabled"`
}

// UpdateSlackEnabledResponseDTO matches the backend UpdateEnabledResponse
// schema.
type UpdateSlackEnabledResponseDTO struct {
	IsEnabled bool `json:"is_enabled"`
}
