package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of the session cookie. The session ID (jti) keys the
// server-side session row, which is what actually authorizes a request; the
// signature only keeps forged cookies from reaching the database.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionIdleTimeout caps how long a session may sit idle. The server-side
// expiry slides forward by this much on every authenticated request.
const SessionIdleTimeout = 30 * time.Minute

// CookieMaxAge is the absolute lifetime of the session cookie. The cookie may
// outlive the server-side session; the session row is authoritative.
const CookieMaxAge = 7 * 24 * time.Hour

// NewSessionID generates an opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// GenerateToken signs a session cookie value for a user and session ID.
func GenerateToken(secret, sessionID string, userID int64) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(CookieMaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a session cookie value, returning the claims.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token has no session id")
	}

	return claims, nil
}
