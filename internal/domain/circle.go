package domain

import "time"

// Circle is a small invite-code based group of users among whom the
// backend computes parallel-running signals.
type Circle struct {
	ID         uint64
	Name       string
	InviteCode string
	IsOwner    bool
	Members    []CircleMember
	CreatedAt  time.Time
}

// CircleMember is a single member of a circle.
type CircleMember struct {
	GitHubUsername string
	AvatarURL      string
	JoinedAt       time.Time
}

// CircleList is the backend's circle list payload including the
// plan-quota metadata displayed alongside it.
type CircleList struct {
	Circles    []Circle
	Count      int
	MaxCircles int
}

// FindByID locates a circle in the list by exact identifier match.
// Returns nil when the id is not present, which callers treat as a
// business "not found", never a transport failure.
func (l *CircleList) FindByID(id uint64) *Circle {
	for i := range l.Circles {
		if l.Circles[i].ID == id {
			return &l.Circles[i]
		}
	}
	return nil
}
