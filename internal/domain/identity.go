package domain

import "strconv"

// Identity is the authenticated GitHub user attached to every private
// backend call. It is created once per request from the session and is
// immutable; orchestrators and actions receive it as an explicit
// parameter rather than reading ambient state.
type Identity struct {
	GitHubUserID   uint64
	GitHubUsername string
}

// HeaderValue renders the external user id as sent in the
// X-GitHub-User-ID request header.
func (id Identity) HeaderValue() string {
	return strconv.FormatUint(id.GitHubUserID, 10)
}

// GitHubProfile is the OAuth profile received at sign-in and forwarded
// to the backend for the first-login identity upsert.
type GitHubProfile struct {
	GitHubUserID   uint64
	GitHubUsername string
	Email          string
	AvatarURL      string
}
