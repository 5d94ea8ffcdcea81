package httpapi

import (
	"net/http"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// RequireSession is the session gate: it reads the session cookie, verifies
// the token, and either attaches the recovered claims to the request context
// or terminates the request.
//
// An absent cookie is rejected with 401 without invoking the codec; a
// present-but-invalid token (expired, tampered, malformed) is rejected with
// 403. The distinction between failure modes is never surfaced to the client.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeErr(w, http.StatusUnauthorized, "access denied: no token provided")
			return
		}

		claims, err := s.codec.Verify(cookie.Value)
		if err != nil {
			s.logger.Warn(r.Context(), "session token rejected", "reason", err.Error())
			recordAuthAttempt("session", false)
			writeErr(w, http.StatusForbidden, "invalid token")
			return
		}

		recordAuthAttempt("session", true)
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}
