package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zanvidmar/stockpile/internal/auth"
	"github.com/zanvidmar/stockpile/internal/model"
	"github.com/zanvidmar/stockpile/internal/store"
)

// AuthHandler handles registration and session lifecycle endpoints.
type AuthHandler struct {
	DB     *sql.DB
	Secret string
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateRegistration(req); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	existing, err := store.GetUserByUsername(r.Context(), h.DB, req.Username)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if existing != nil {
		respondFailure(w, http.StatusBadRequest, "Username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondInternal(w, err)
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.Username, req.Email, string(hash))
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, user.ID, nil, model.ActionRegister); err != nil {
		respondInternal(w, err)
		return
	}

	slog.Info("user registered", "user", user.Username)
	respondSuccess(w, http.StatusCreated, "User registered successfully!", nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := store.GetUserByUsername(r.Context(), h.DB, req.Username)
	if err != nil {
		respondInternal(w, err)
		return
	}
	// Missing user and wrong password are indistinguishable on purpose.
	if user == nil {
		respondFailure(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		respondFailure(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sessionID := auth.NewSessionID()
	if err := store.CreateSession(r.Context(), h.DB, sessionID, user.ID, time.Now().Add(auth.SessionIdleTimeout)); err != nil {
		respondInternal(w, err)
		return
	}

	token, err := auth.GenerateToken(h.Secret, sessionID, user.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, user.ID, nil, model.ActionLogin); err != nil {
		respondInternal(w, err)
		return
	}

	setSessionCookie(w, token)
	slog.Info("user logged in", "user", user.Username)
	respondSuccess(w, http.StatusOK, "Login successful!", nil)
}

// Logout handles POST /logout. It is idempotent: without an active session it
// still clears the cookie and reports success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(h.Secret, cookie.Value); err == nil {
			sess, err := store.GetSession(r.Context(), h.DB, claims.ID)
			if err != nil {
				respondInternal(w, err)
				return
			}
			if sess != nil && time.Now().Before(sess.ExpiresAt) {
				if err := store.DeleteSession(r.Context(), h.DB, sess.ID); err != nil {
					respondInternal(w, err)
					return
				}
				if err := store.RecordAction(r.Context(), h.DB, sess.UserID, nil, model.ActionLogout); err != nil {
					respondInternal(w, err)
					return
				}
				slog.Info("user logged out", "user_id", sess.UserID)
			}
		}
	}

	clearSessionCookie(w)
	respondSuccess(w, http.StatusOK, "Logged out successfully!", nil)
}

// setSessionCookie sets the session cookie with consistent attributes.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie clears the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
