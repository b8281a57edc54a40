package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AgentTokenHeader carries the desktop agent's shared secret.
const AgentTokenHeader = "X-Agent-Token"

// AgentTokenAuth admits a request only when its agent token equals secret.
// An empty secret rejects every request.
func AgentTokenAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token := c.GetHeader(AgentTokenHeader)
		if token == "" {
			logger.Warn("Agent token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "detail": "Missing agent token"})
			return
		}

		if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			logger.Warn("Invalid agent token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "detail": "Invalid agent token"})
			return
		}

		c.Set(authenticatedBy, "agent_token")
		c.Next()
	}
}

// IsAgentAuthenticated reports whether AgentTokenAuth admitted the request.
func IsAgentAuthenticated(c *gin.Context) bool {
	method, ok := c.Get(authenticatedBy)
	return ok && method == "agent_token"
}
