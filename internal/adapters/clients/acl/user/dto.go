// Package user implements the Anti-Corruption Layer translators for the
// backend's auth and user resources.
package user

// AuthCallbackRequestDTO matches the backend AuthCallbackRequest schema.
type AuthCallbackRequestDTO struct {
	GithubUserID   uint64 `json:"github_user_id"`
	GithubUsername string `json:"github_username"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatar_url"`
}

// UserDTO matches the backend UserResponse schema.
type UserDTO struct {
	ID             uint64 `json:"id"`
	GithubUserID   uint64 `json:"github_user_id"`
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	CreatedAt      string `json:"created_at"`
}
