package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/zanvidmar/stockpile/internal/auth"
	"github.com/zanvidmar/stockpile/internal/model"
	"github.com/zanvidmar/stockpile/internal/store"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

type contextKey string

const sessionKey contextKey = "session"

// SessionMiddleware resolves the session cookie to a server-side session and
// adds it to the request context. The session row is authoritative: a valid
// cookie whose session has been deleted or has idled out is rejected. Each
// authenticated request slides the expiry forward.
func SessionMiddleware(secret string, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				respondFailure(w, http.StatusForbidden, "Unauthorized")
				return
			}

			claims, err := auth.ValidateToken(secret, cookie.Value)
			if err != nil {
				respondFailure(w, http.StatusForbidden, "Unauthorized")
				return
			}

			sess, err := store.GetSession(r.Context(), db, claims.ID)
			if err != nil {
				respondInternal(w, err)
				return
			}
			if sess == nil || sess.UserID != claims.UserID {
				respondFailure(w, http.StatusForbidden, "Unauthorized")
				return
			}
			if time.Now().After(sess.ExpiresAt) {
				_ = store.DeleteSession(r.Context(), db, sess.ID)
				respondFailure(w, http.StatusForbidden, "Unauthorized")
				return
			}

			if err := store.TouchSession(r.Context(), db, sess.ID, time.Now().Add(auth.SessionIdleTimeout)); err != nil {
				slog.Error("failed to touch session", "error", err)
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the authenticated session from the context.
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionKey).(*model.Session)
	return sess
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
