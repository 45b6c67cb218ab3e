package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/pkg/session"
)

// ===================================
// CONSTANTS
// ===================================

const (
	ContextKeySessionID = "session_id"
)

// ===================================
// MIDDLEWARE CONFIGURATION
// ===================================

// SessionMiddlewareConfig holds configuration for session middleware
type SessionMiddlewareConfig struct {
	Manager        *session.Manager
	CookieName     string
	CookieMaxAge   int // seconds
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

// DefaultSessionMiddlewareConfig returns secure default configuration
func DefaultSessionMiddlewareConfig(manager *session.Manager, cookieName string, maxAge int) SessionMiddlewareConfig {
	return SessionMiddlewareConfig{
		Manager:        manager,
		CookieName:     cookieName,
		CookieMaxAge:   maxAge,
		CookieDomain:   "", // Current domain
		CookiePath:     "/",
		CookieSecure:   true, // HTTPS only (set false for localhost dev)
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// ===================================
// SESSION MIDDLEWARE
// ===================================

// SessionMiddleware identifies the guest session that scopes the cart.
//
// Flow:
// 1. Read the signed session cookie
// 2. Valid token → extract session_id
// 3. Missing/invalid/expired token → mint a new session and set the cookie
// 4. Set session_id in context for handlers
func SessionMiddleware(config SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		token, err := c.Cookie(config.CookieName)
		if err == nil && token != "" {
			sessionID, err = config.Manager.Validate(token)
			if err != nil {
				sessionID = "" // Invalid/expired → new session below
			}
		}

		if sessionID == "" {
			newToken, newSessionID, err := config.Manager.Issue()
			if err != nil {
				// Without a session there is no cart scope; fail the request.
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "SESSION_ERROR",
						"message": "Failed to establish session",
					},
				})
				return
			}
			sessionID = newSessionID
			setSessionCookie(c, newToken, config)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// setSessionCookie sets the signed session cookie
func setSessionCookie(c *gin.Context, token string, config SessionMiddlewareConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		config.CookieName,   // name
		token,               // value
		config.CookieMaxAge, // maxAge
		config.CookiePath,   // path
		config.CookieDomain, // domain
		config.CookieSecure, // secure (HTTPS only)
		true,                // httpOnly (prevent XSS)
	)
}

// ===================================
// CONTEXT HELPERS FOR HANDLERS
// ===================================

// GetSessionID retrieves session ID from context
func GetSessionID(c *gin.Context) (string, error) {
	value, exists := c.Get(ContextKeySessionID)
	if !exists {
		return "", ErrSessionNotFound
	}

	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidSession
	}

	return sessionID, nil
}

// ===================================
// ERRORS
// ===================================

var (
	ErrSessionNotFound = fmt.Errorf("session_id not found in context")
	ErrInvalidSession  = fmt.Errorf("invalid session_id in context")
)
