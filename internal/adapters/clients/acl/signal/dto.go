// Package signal implements the Anti-Corruption Layer translators for
// the backend's signal resources.
package signal

// SignalUserDTO matches the backend SignalUserResponse schema.
type SignalUserDTO struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
}

// SignalDTO matches the backend SignalResponse schema.
type SignalDTO struct {
	Type       string          `json:"type"`
	Date       string          `json:"date"`
	Users      []SignalUserDTO `json:"users"`
	Detail     string          `json:"detail"`
	CircleID   uint64          `json:"circle_id"`
	CircleName string          `json:"circle_name"`
}

// ListResponseDTO matches the backend SignalsListResponse schema.
type ListResponseDTO struct {
	Signals []SignalDTO `json:"signals"`
}
