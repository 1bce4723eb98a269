package domain

import "time"

// User is the backend's record of a signed-in GitHub user.
type User struct {
	ID             uint64
	GitHubUserID   uint64
	GitHubUsername string
	Email          string
	AvatarURL      string
	CreatedAt      time.Time
}
