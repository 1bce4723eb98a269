// Package activity implements the Anti-Corruption Layer translators for
// the backend's activity stream and rhythm resources.
package activity

// ActivityItemDTO matches the backend ActivityItem schema.
type ActivityItemDTO struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	Repository     string `json:"repository"`
	CommitCount    int    `json:"commit_count"`
	Date           string `json:"date"`
}

// StreamResponseDTO matches the backend ActivityStreamResponse schema.
type StreamResponseDTO struct {
	Activities []ActivityItemDTO `json:"activities"`
}

// WeeklyRhythmDTO matches the backend WeeklyRhythm schema.
type WeeklyRhythmDTO struct {
	Mon bool `json:"mon"`
	Tue bool `json:"tue"`
	Wed bool `json:"wed"`
	Thu bool `json:"thu"`
	Fri bool `json:"fri"`
	Sat bool `json:"sat"`
	Sun bool `json:"sun"`
}

// UserRhythmDTO matches the backend UserRhythm schema.
type UserRhythmDTO struct {
	GithubUsername string          `json:"github_username"`
	AvatarURL      string          `json:"avatar_url"`
	PatternLabel   string          `json:"pattern_label"`
	WeeklyRhythm   WeeklyRhythmDTO `json:"weekly_rhythm"`
}

// RhythmResponseDTO matches the backend RhythmResponse schema.
type RhythmResponseDTO struct {
	Users  []UserRhythmDTO `json:"users"`
	Period string          `json:"period"`
}
