package dto

import (
	"strings"

	"github.com/commitly/web/internal/domain"
)

const msgRequired = "is required"

// SignInRequest represents the JSON body for establishing a session
// after the OAuth flow completes.
type SignInRequest struct {
	GithubUserID   uint64 `json:"github_user_id"`
	GithubUsername string `json:"github_username"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatar_url"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *SignInRequest) Validate() error {
	fields := make(map[string]string)

	if r.GithubUserID == 0 {
		fields["github_user_id"] = msgRequired
	}
	if strings.TrimSpace(r.GithubUsername) == "" {
		fields["github_username"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToGitHubProfile converts the request to a domain GitHubProfile.
func (r *SignInRequest) ToGitHubProfile() domain.GitHubProfile {
	return domain.GitHubProfile{
		GitHubUserID:   r.GithubUserID,
		GitHubUsername: r.GithubUsername,
		Email:          r.Email,
		AvatarURL:      r.AvatarURL,
	}
}

// Action request bodies carry user input as-is; business validation
// (required fields, channel types) happens in the action services so
// failures come back as action outcomes, not problem responses.

// CreateCircleRequest represents the JSON body for creating a circle.
type CreateCircleRequest struct {
	Name string `json:"name"`
}

// JoinCircleRequest represents the JSON body for joining a circle by
// invite code.
type JoinCircleRequest struct {
	InviteCode string `json:"invite_code"`
}

// AddRivalRequest represents the JSON body for adding a rival.
type AddRivalRequest struct {
	Username string `json:"username"`
}

// CreateNotificationSettingRequest represents the JSON body for creating
// a per-channel notification setting.
type CreateNotificationSettingRequest struct {
	ChannelType string `json:"channel_type"`
	WebhookURL  string `json:"webhook_url"`
	LineUserID  string `json:"line_user_id"`
}

// UpdateNotificationSettingRequest represents the JSON body for updating
// a per-channel notification setting.
type UpdateNotificationSettingRequest struct {
	IsEnabled  bool   `json:"is_enabled"`
	WebhookURL string `json:"webhook_url"`
	LineUserID string `json:"line_user_id"`
}

// RegisterSlackRequest represents the JSON body for registering a Slack
// webhook.
type RegisterSlackRequest struct {
	WebhookURL string `json:"webhook_url"`
}

// UpdateSlackEnabledRequest represents the JSON body for toggling Slack
// notifications.
type UpdateSlackEnabledRequest struct {
	IsEnabled bool `json:"is_enabled"`
}
