package http

import (
	"context"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/logger"
)

// HeaderSessionID carries the anonymous storefront session.
const HeaderSessionID = "X-Session-ID"

type sessionKey struct{}

// RequireSession rejects requests without a session header and stores the
// session ID in the request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{
					Code:    "MISSING_SESSION",
					Message: "X-Session-ID header is required",
				},
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		ctx = logger.WithSessionID(ctx, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session ID stored by RequireSession.
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}
