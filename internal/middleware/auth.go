package middleware

import (
	"net/http"
	"strings"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/common"
)

// SessionCookieName is the HttpOnly cookie carrying the gateway session id.
const SessionCookieName = "hubgate_session"

// SessionMiddleware resolves the session from the cookie (browser clients) or
// a bearer header (CLI and tests) and attaches it to the request context.
// Anonymous requests pass through with no session; handlers that need one use
// RequireSession.
func SessionMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.GetSession(r.Context(), sessionID)
			if err != nil {
				// Stale cookie; clear it and continue anonymously
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects anonymous requests with a 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.GetSession(r.Context()) == nil {
			http.Error(w, "Unauthorized. Sign in required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionIDFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
