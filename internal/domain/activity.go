package domain

// ActivityItem is one row of the recent commit stream: a user's commit
// count in a repository on a given date (formatted YYYY-MM-DD).
type ActivityItem struct {
	GitHubUsername string
	AvatarURL      string
	Repository     string
	CommitCount    int
	Date           string
}

// ActivityStream is the recent-activity payload covering the user and
// their rivals, newest first.
type ActivityStream struct {
	Activities []ActivityItem
}

// WeeklyRhythm flags which weekdays a user committed on during the
// reporting window.
type WeeklyRhythm struct {
	Mon bool
	Tue bool
	Wed bool
	Thu bool
	Fri bool
	Sat bool
	Sun bool
}

// UserRhythm is a single user's weekly commit rhythm. PatternLabel is a
// backend-computed classification displayed verbatim.
type UserRhythm struct {
	GitHubUsername string
	AvatarURL      string
	PatternLabel   string
	Weekly         WeeklyRhythm
}

// Rhythm is the rhythm payload for the current user and their rivals.
// Period is the backend-formatted reporting window.
type Rhythm struct {
	Users  []UserRhythm
	Period string
}
