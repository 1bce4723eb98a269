package domain

import "time"

// ChannelType identifies a notification delivery channel.
type ChannelType string

// Supported notification channels.
const (
	ChannelLine    ChannelType = "line"
	ChannelSlack   ChannelType = "slack"
	ChannelDiscord ChannelType = "discord"
)

// IsValid reports whether the channel type is one the backend supports.
func (c ChannelType) IsValid() bool {
	switch c {
	case ChannelLine, ChannelSlack, ChannelDiscord:
		return true
	}
	return false
}

// NotificationSetting is a per-channel notification configuration.
// Webhook channels populate WebhookURL; LINE populates LineUserID.
type NotificationSetting struct {
	ID          uint64
	ChannelType ChannelType
	WebhookURL  string
	LineUserID  string
	IsEnabled   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlackSetting is the Slack-specific webhook configuration. Absence of
// a setting is an ordinary state, not an error.
type SlackSetting struct {
	ID         uint64
	WebhookURL string
	IsEnabled  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
