// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/commitly/web/internal/domain"
)

// Page responses bundle everything one view needs plus two envelope
// fields: Epoch, the page's current data epoch for client-side staleness
// checks, and Error, the banner message when part of the page failed to
// load. A page with an Error still carries whatever data was fetched.

// ActionOutcomeResponse represents a mutation action's result.
type ActionOutcomeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToActionOutcomeResponse converts a domain ActionOutcome to an HTTP
// response DTO.
func ToActionOutcomeResponse(o domain.ActionOutcome) ActionOutcomeResponse {
	return ActionOutcomeResponse{
		Status:  string(o.Status),
		Message: o.Message,
	}
}

// --- Activity page ---

// ActivityItemResponse represents one commit stream row.
type ActivityItemResponse struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	Repository     string `json:"repository"`
	CommitCount    int    `json:"commit_count"`
	Date           string `json:"date"`
}

// WeeklyRhythmResponse represents a user's active weekdays.
type WeeklyRhythmResponse struct {
	Mon bool `json:"mon"`
	Tue bool `json:"tue"`
	Wed bool `json:"wed"`
	Thu bool `json:"thu"`
	Fri bool `json:"fri"`
	Sat bool `json:"sat"`
	Sun bool `json:"sun"`
}

// UserRhythmResponse represents a single user's weekly rhythm.
type UserRhythmResponse struct {
	GithubUsername string               `json:"github_username"`
	AvatarURL      string               `json:"avatar_url"`
	PatternLabel   string               `json:"pattern_label"`
	WeeklyRhythm   WeeklyRhythmResponse `json:"weekly_rhythm"`
}

// ActivityStreamResponse represents the recent commit stream section.
type ActivityStreamResponse struct {
	Activities []ActivityItemResponse `json:"activities"`
}

// RhythmResponse represents the weekly rhythm section.
type RhythmResponse struct {
	Users  []UserRhythmResponse `json:"users"`
	Period string               `json:"period"`
}

// ActivityPageResponse represents the activity page. A section that
// failed to load is null.
type ActivityPageResponse struct {
	Stream *ActivityStreamResponse `json:"stream"`
	Rhythm *RhythmResponse         `json:"rhythm"`
	Epoch  uint64                  `json:"epoch"`
	Error  string                  `json:"error,omitempty"`
}

// ToActivityPageResponse converts a domain ActivityPage to an HTTP
// response DTO.
func ToActivityPageResponse(page *domain.ActivityPage, epoch uint64) ActivityPageResponse {
	resp := ActivityPageResponse{
		Epoch: epoch,
		Error: page.ErrorMessage,
	}

	if page.Stream != nil {
		items := make([]ActivityItemResponse, len(page.Stream.Activities))
		for i, a := range page.Stream.Activities {
			items[i] = ActivityItemResponse{
				GithubUsername: a.GitHubUsername,
				AvatarURL:      a.AvatarURL,
				Repository:     a.Repository,
				CommitCount:    a.CommitCount,
				Date:           a.Date,
			}
		}
		resp.Stream = &ActivityStreamResponse{Activities: items}
	}

	if page.Rhythm != nil {
		users := make([]UserRhythmResponse, len(page.Rhythm.Users))
		for i, u := range page.Rhythm.Users {
			users[i] = UserRhythmResponse{
				GithubUsername: u.GitHubUsername,
				AvatarURL:      u.AvatarURL,
				PatternLabel:   u.PatternLabel,
				WeeklyRhythm: WeeklyRhythmResponse{
					Mon: u.Weekly.Mon,
					Tue: u.Weekly.Tue,
					Wed: u.Weekly.Wed,
					Thu: u.Weekly.Thu,
					Fri: u.Weekly.Fri,
					Sat: u.Weekly.Sat,
					Sun: u.Weekly.Sun,
				},
			}
		}
		resp.Rhythm = &RhythmResponse{Users: users, Period: page.Rhythm.Period}
	}

	return resp
}

// --- Circle pages ---

// CircleMemberResponse represents a circle member.
type CircleMemberResponse struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	JoinedAt       string `json:"joined_at"`
}

// CircleResponse represents a single circle.
type CircleResponse struct {
	ID         uint64                 `json:"id"`
	Name       string                 `json:"name"`
	InviteCode string                 `json:"invite_code"`
	IsOwner    bool                   `json:"is_owner"`
	Members    []CircleMemberResponse `json:"members"`
	CreatedAt  string                 `json:"created_at"`
}

// ToCircleResponse converts a domain Circle entity to an HTTP response DTO.
func ToCircleResponse(c *domain.Circle) CircleResponse {
	members := make([]CircleMemberResponse, len(c.Members))
	for i, m := range c.Members {
		members[i] = CircleMemberResponse{
			GithubUsername: m.GitHubUsername,
			AvatarURL:      m.AvatarURL,
			JoinedAt:       m.JoinedAt.Format(time.RFC3339),
		}
	}
	return CircleResponse{
		ID:         c.ID,
		Name:       c.Name,
		InviteCode: c.InviteCode,
		IsOwner:    c.IsOwner,
		Members:    members,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}

// CirclesPageResponse represents the circle list page.
type CirclesPageResponse struct {
	Circles    []CircleResponse `json:"circles"`
	Count      int              `json:"count"`
	MaxCircles int              `json:"max_circles"`
	Epoch      uint64           `json:"epoch"`
	Error      string           `json:"error,omitempty"`
}

// ToCirclesPageResponse converts a domain CirclesPage to an HTTP
// response DTO.
func ToCirclesPageResponse(page *domain.CirclesPage, epoch uint64) CirclesPageResponse {
	circles := make([]CircleResponse, len(page.Circles))
	for i := range page.Circles {
		circles[i] = ToCircleResponse(&page.Circles[i])
	}
	return CirclesPageResponse{
		Circles:    circles,
		Count:      page.Count,
		MaxCircles: page.MaxCircles,
		Epoch:      epoch,
		Error:      page.ErrorMessage,
	}
}

// SignalUserResponse represents a participant in a signal.
type SignalUserResponse struct {
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
}

// SignalResponse represents a backend-detected coincidence signal.
type SignalResponse struct {
	Type       string               `json:"type"`
	Date       string               `json:"date"`
	Users      []SignalUserResponse `json:"users"`
	Detail     string               `json:"detail"`
	CircleID   uint64               `json:"circle_id"`
	CircleName string               `json:"circle_name"`
}

// ToSignalResponses converts domain Signals to HTTP response DTOs.
func ToSignalResponses(signals []domain.Signal) []SignalResponse {
	resp := make([]SignalResponse, len(signals))
	for i, s := range signals {
		users := make([]SignalUserResponse, len(s.Users))
		for j, u := range s.Users {
			users[j] = SignalUserResponse{
				GithubUsername: u.GitHubUsername,
				AvatarURL:      u.AvatarURL,
			}
		}
		resp[i] = SignalResponse{
			Type:       s.Type,
			Date:       s.Date,
			Users:      users,
			Detail:     s.Detail,
			CircleID:   s.CircleID,
			CircleName: s.CircleName,
		}
	}
	return resp
}

// CircleDetailPageResponse represents a single circle's page.
type CircleDetailPageResponse struct {
	Circle  CircleResponse   `json:"circle"`
	Signals []SignalResponse `json:"signals"`
	Epoch   uint64           `json:"epoch"`
}

// ToCircleDetailPageResponse converts a domain CircleDetailPage to an
// HTTP response DTO.
func ToCircleDetailPageResponse(page *domain.CircleDetailPage, epoch uint64) CircleDetailPageResponse {
	return CircleDetailPageResponse{
		Circle:  ToCircleResponse(page.Circle),
		Signals: ToSignalResponses(page.Signals),
		Epoch:   epoch,
	}
}

// --- Dashboard page ---

// DailyStatResponse represents one day's commit count.
type DailyStatResponse struct {
	Date        string `json:"date"`
	CommitCount int    `json:"commit_count"`
}

// RepoStatResponse represents one repository's commit count.
type RepoStatResponse struct {
	Repository  string `json:"repository"`
	CommitCount int    `json:"commit_count"`
}

// UserCommitStatsResponse represents a single user's aggregated commits.
type UserCommitStatsResponse struct {
	GithubUserID   uint64              `json:"github_user_id"`
	GithubUsername string              `json:"github_username"`
	AvatarURL      string              `json:"avatar_url"`
	TotalCommits   int                 `json:"total_commits"`
	DailyStats     []DailyStatResponse `json:"daily_stats"`
	RepoStats      []RepoStatResponse  `json:"repo_stats"`
}

// DashboardResponse represents the commit comparison section.
type DashboardResponse struct {
	Period    string                    `json:"period"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	MyStats   UserCommitStatsResponse   `json:"my_stats"`
	Rivals    []UserCommitStatsResponse `json:"rivals"`
}

// DashboardPageResponse represents the dashboard page. HasCircles is
// false when the user belongs to no circle, so the client can hide the
// signals section instead of rendering it empty.
type DashboardPageResponse struct {
	Dashboard     *DashboardResponse `json:"dashboard"`
	RecentSignals []SignalResponse   `json:"recent_signals"`
	HasCircles    bool               `json:"has_circles"`
	Epoch         uint64             `json:"epoch"`
	Error         string             `json:"error,omitempty"`
}

// ToDashboardPageResponse converts a domain DashboardPage to an HTTP
// response DTO.
func ToDashboardPageResponse(page *domain.DashboardPage, epoch uint64) DashboardPageResponse {
	resp := DashboardPageResponse{
		RecentSignals: ToSignalResponses(page.RecentSignals),
		HasCircles:    page.HasCircles,
		Epoch:         epoch,
		Error:         page.ErrorMessage,
	}

	if page.Dashboard != nil {
		rivals := make([]UserCommitStatsResponse, len(page.Dashboard.Rivals))
		for i := range page.Dashboard.Rivals {
			rivals[i] = toUserCommitStatsResponse(&page.Dashboard.Rivals[i])
		}
		resp.Dashboard = &DashboardResponse{
			Period:    page.Dashboard.Period,
			StartDate: page.Dashboard.StartDate,
			EndDate:   page.Dashboard.EndDate,
			MyStats:   toUserCommitStatsResponse(&page.Dashboard.MyStats),
			Rivals:    rivals,
		}
	}

	return resp
}

func toUserCommitStatsResponse(s *domain.UserCommitStats) UserCommitStatsResponse {
	daily := make([]DailyStatResponse, len(s.DailyStats))
	for i, d := range s.DailyStats {
		daily[i] = DailyStatResponse{Date: d.Date, CommitCount: d.CommitCount}
	}
	repos := make([]RepoStatResponse, len(s.RepoStats))
	for i, r := range s.RepoStats {
		repos[i] = RepoStatResponse{Repository: r.Repository, CommitCount: r.CommitCount}
	}
	return UserCommitStatsResponse{
		GithubUserID:   s.GitHubUserID,
		GithubUsername: s.GitHubUsername,
		AvatarURL:      s.AvatarURL,
		TotalCommits:   s.TotalCommits,
		DailyStats:     daily,
		RepoStats:      repos,
	}
}

// --- Rivals page ---

// RivalResponse represents a single rival.
type RivalResponse struct {
	GithubUserID   uint64 `json:"github_user_id"`
	GithubUsername string `json:"github_username"`
	AvatarURL      string `json:"avatar_url"`
	AddedAt        string `json:"added_at"`
}

// RivalsPageResponse represents the rival list page.
type RivalsPageResponse struct {
	Rivals    []RivalResponse `json:"rivals"`
	Count     int             `json:"count"`
	MaxRivals int             `json:"max_rivals"`
	Epoch     uint64          `json:"epoch"`
	Error     string          `json:"error,omitempty"`
}

// ToRivalsPageResponse converts a domain RivalsPage to an HTTP response DTO.
func ToRivalsPageResponse(page *domain.RivalsPage, epoch uint64) RivalsPageResponse {
	rivals := make([]RivalResponse, len(page.Rivals))
	for i, rv := range page.Rivals {
		rivals[i] = RivalResponse{
			GithubUserID:   rv.GitHubUserID,
			GithubUsername: rv.GitHubUsername,
			AvatarURL:      rv.AvatarURL,
			AddedAt:        rv.AddedAt.Format(time.RFC3339),
		}
	}
	return RivalsPageResponse{
		Rivals:    rivals,
		Count:     page.Count,
		MaxRivals: page.MaxRivals,
		Epoch:     epoch,
		Error:     page.ErrorMessage,
	}
}

// --- Notifications page ---

// NotificationSettingResponse represents a per-channel setting.
type NotificationSettingResponse struct {
	ID          uint64 `json:"id"`
	ChannelType string `json:"channel_type"`
	WebhookURL  string `json:"webhook_url"`
	LineUserID  string `json:"line_user_id"`
	IsEnabled   bool   `json:"is_enabled"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// SlackSettingResponse represents the Slack webhook setting.
type SlackSettingResponse struct {
	ID         uint64 `json:"id"`
	WebhookURL string `json:"webhook_url"`
	IsEnabled  bool   `json:"is_enabled"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// NotificationsPageResponse represents the notification settings page.
// Slack is null when no webhook is registered.
type NotificationsPageResponse struct {
	Settings []NotificationSettingResponse `json:"settings"`
	Slack    *SlackSettingResponse         `json:"slack"`
	Epoch    uint64                        `json:"epoch"`
	Error    string                        `json:"error,omitempty"`
}

// ToNotificationsPageResponse converts a domain NotificationsPage to an
// HTTP response DTO.
func ToNotificationsPageResponse(page *domain.NotificationsPage, epoch uint64) NotificationsPageResponse {
	settings := make([]NotificationSettingResponse, len(page.Settings))
	for i, s := range page.Settings {
		settings[i] = NotificationSettingResponse{
			ID:          s.ID,
			ChannelType: string(s.ChannelType),
			WebhookURL:  s.WebhookURL,
			LineUserID:  s.LineUserID,
			IsEnabled:   s.IsEnabled,
			CreatedAt:   s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
		}
	}

	resp := NotificationsPageResponse{
		Settings: settings,
		Epoch:    epoch,
		Error:    page.ErrorMessage,
	}

	if page.Slack != nil {
		resp.Slack = &SlackSettingResponse{
			ID:         page.Slack.ID,
			WebhookURL: page.Slack.WebhookURL,
			IsEnabled:  page.Slack.IsEnabled,
			CreatedAt:  page.Slack.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  page.Slack.UpdatedAt.Format(time.RFC3339),
		}
	}

	return resp
}
