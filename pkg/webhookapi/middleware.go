package webhookapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const correlationHeader = "X-Correlation-ID"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// correlationID adopts the caller's correlation id or mints one, and echoes
// it on the response.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("correlation_id", id)
		c.Writer.Header().Set(correlationHeader, id)
		c.Next()
	}
}

// requireInternalToken guards the /internal group with a constant-time token
// check.
func (s *Server) requireInternalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := s.cfg.Queue.InternalToken
		provided := c.GetHeader("X-Internal-Token")
		if token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(provided)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid internal token"})
			return
		}
		c.Next()
	}
}

func requestCorrelationID(c *gin.Context) string {
	if id, ok := c.Get("correlation_id"); ok {
		if str, ok := id.(string); ok {
			return str
		}
	}
	return ""
}
