package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the guest session token payload.
// Sessions identify a cart scope, not an authenticated user.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Manager signs and validates guest session tokens.
type Manager struct {
	secret string
	maxAge time.Duration
}

// NewManager creates new session manager
func NewManager(secret string, maxAge time.Duration) *Manager {
	return &Manager{secret: secret, maxAge: maxAge}
}

// Issue mints a token for a fresh session ID.
func (m *Manager) Issue() (token string, sessionID string, err error) {
	sessionID = uuid.New().String()

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.maxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, sessionID, nil
}

// Validate parses a token and returns the session ID it carries.
func (m *Manager) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	// Session ID phải là UUID hợp lệ
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", fmt.Errorf("malformed session id in token: %w", err)
	}

	return claims.SessionID, nil
}
