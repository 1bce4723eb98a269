// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"time"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/adapters/http/middleware"
	"github.com/commitly/web/internal/ports"
)

// AuthHandler handles session creation and revocation around the OAuth
// flow: the browser completes GitHub OAuth elsewhere and posts the
// resulting profile here to obtain a session cookie.
type AuthHandler struct {
	svc          ports.AuthService
	cookieTTL    time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. cookieTTL bounds the session
// cookie lifetime and should match the session store TTL; cookieSecure
// marks the cookie Secure for TLS deployments.
func NewAuthHandler(svc ports.AuthService, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		svc:          svc,
		cookieTTL:    cookieTTL,
		cookieSecure: cookieSecure,
	}
}

// SignIn handles POST /api/session. It validates the posted GitHub
// profile, creates a session, and sets the session cookie.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.svc.SignIn(r.Context(), req.ToGitHubProfile())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// SignOut handles DELETE /api/session. It revokes the session token and
// clears the cookie. Requests without a cookie succeed trivially.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.svc.SignOut(r.Context(), cookie.Value); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
