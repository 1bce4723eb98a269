package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/commitly/web/internal/adapters/http/dto"
	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "commitly_session"

// identityKey is the context key for storing the resolved identity.
type identityKey struct{}

// WithIdentity returns a new context with the given identity stored in it.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the identity from the context. The second
// return value reports whether an identity was stored.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// Session returns middleware that resolves the session cookie into an
// identity stored in the request context. A missing cookie or an
// unknown/expired token leaves the context without an identity; it is
// RequireIdentity that turns that into a 401. Store failures other than
// a missing session are treated the same way after logging, so a
// degraded session store reads as "signed out" rather than a 500.
func Session(store ports.SessionStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := store.Load(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) {
					logger.ErrorContext(r.Context(), "session lookup failed",
						slog.Any("error", err),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity returns middleware that rejects requests without a
// resolved identity with a 401 problem response, before any backend
// call is attempted.
func RequireIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); !ok {
				dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
