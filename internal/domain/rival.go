package domain

import "time"

// Rival is a one-directional follow: another GitHub user whose commit
// activity the current user compares against.
type Rival struct {
	GitHubUserID   uint64
	GitHubUsername string
	AvatarURL      string
	AddedAt        time.Time
}

// RivalList is the backend's rival list payload with plan-quota
// metadata.
type RivalList struct {
	Rivals    []Rival
	Count     int
	MaxRivals int
}
