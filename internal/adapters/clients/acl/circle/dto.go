// Package circle implements the Anti-Corruption Layer translators for
// the backend's circle resources.
package circle

// CircleMemberDTO matches the backend CircleMemberResponse schema.
type CircleMemberDTO struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	JoinedAt       string `json:"joined_at"`
}

// CircleDTO matches the backend CircleResponse schema.
type CircleDTO struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	InviteCode string            `json:"invite_code"`
	IsOwner    bool              `json:"is_owner"`
	Members    []CircleMemberDTO `json:"members"`
	CreatedAt  string            `json:"created_at"`
}

// ListResponseDTO matches the backend CirclesListResponse schema.
type ListResponseDTO struct {
	Circles    []CircleDTO `json:"circles"`
	Count      int         `json:"count"`
	MaxCircles int         `json:"max_circles"`
}

// CreateRequestDTO matches the backend CreateCircleRequest schema.
type CreateRequestDTO struct {
	Name string `json:"name"`
}

// JoinRequestDTO matches the backend JoinCircleRequest schema.
type JoinRequestDTO struct {
	InviteCode string `json:"invite_code"`
}
