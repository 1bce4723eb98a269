package domain

// Signal types reported by the backend's coincidence matching.
const (
	SignalSameDay      = "same_day"
	SignalSameHour     = "same_hour"
	SignalSameLanguage = "same_language"
)

// Signal is a backend-detected coincidence (same day, same hour, same
// language) between circle members' commit activity. Computed entirely
// on the backend; displayed verbatim here.
type Signal struct {
	Type       string
	Date       string
	Users      []SignalUser
	Detail     string
	CircleID   uint64
	CircleName string
}

// SignalUser identifies a participant in a signal.
type SignalUser struct {
	GitHubUsername string
	AvatarURL      string
}
