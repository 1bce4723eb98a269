package domain

// Page aggregates bundle everything one page view needs into a single
// value. Partial failure is first-class: when an individual fetch fails
// the page still renders what succeeded, and ErrorMessage carries the
// banner text (the backend's message verbatim, or the generic fallback).
// An empty ErrorMessage means every fetch succeeded.

// ActivityPage backs the activity view: the recent commit stream and
// the weekly rhythm, fetched in parallel.
type ActivityPage struct {
	Stream       *ActivityStream
	Rhythm       *Rhythm
	ErrorMessage string
}

// CirclesPage backs the circle list view.
type CirclesPage struct {
	Circles      []Circle
	Count        int
	MaxCircles   int
	ErrorMessage string
}

// CircleDetailPage backs a single circle's view. Signals are best
// effort: a failed signal fetch leaves them empty without failing the
// page.
type CircleDetailPage struct {
	Circle  *Circle
	Signals []Signal
}

// DashboardPage backs the dashboard view. RecentSignals is populated
// only when the user belongs to at least one circle; HasCircles lets
// the view tell "no circles, hide the section" apart from "circles but
// no signals yet".
type DashboardPage struct {
	Dashboard     *Dashboard
	RecentSignals []Signal
	HasCircles    bool
	ErrorMessage  string
}

// RivalsPage backs the rival list view.
type RivalsPage struct {
	Rivals       []Rival
	Count        int
	MaxRivals    int
	ErrorMessage string
}

// NotificationsPage backs the notification settings view. A nil Slack
// means no Slack webhook is registered.
type NotificationsPage struct {
	Settings     []NotificationSetting
	Slack        *SlackSetting
	ErrorMessage string
}
