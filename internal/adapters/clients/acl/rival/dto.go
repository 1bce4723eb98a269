// Package rival implements the Anti-Corruption Layer translators for
// the backend's rival resources.
package rival

// RivalDTO matches the backend RivalResponse schema.
type RivalDTO struct {
	ID             uint64 `json:"id"`
	GithubUserID   uint64 `json:"github_user_id"`
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	CreatedAt      string `json:"created_at"`
}

// ListResponseDTO matches the backend RivalsListResponse schema.
type ListResponseDTO struct {
	Rivals    []RivalDTO `json:"rivals"`
	Count     int        `json:"count"`
	MaxRivals int        `json:"max_rivals"`
}

// AddRequestDTO matches the backend AddRivalRequest schema.
type AddRequestDTO struct {
	Username string `json:"username"`
}
