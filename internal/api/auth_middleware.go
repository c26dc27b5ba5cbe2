package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/ericogr/saber-duel/internal/constants"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSessionName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSessionName, "", -1, "/", "", secure, true)
}

// sessionToken reads the token from the session cookie, falling back to an
// Authorization bearer header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(constants.CookieSessionName); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	return ""
}

// SessionRequired validates the session token and checks that the
// :sessionID path parameter is the session the token was issued for.
func SessionRequired(tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		sessionID, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		if p := c.Param("sessionID"); p != "" && p != sessionID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrSessionMismatch})
			return
		}
		c.Set(constants.ContextSessionID, sessionID)
		c.Next()
	}
}
