package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

// sessionContextKey is where SessionAuth stores the resolved session state
// in the gin context.
const sessionContextKey = "session_state"

// SessionAuth resolves the bearer token into a session state and aborts with
// 401 when it is missing or unknown. The gate is cosmetic: there are no
// credentials, only session identity.
func SessionAuth(sessions *memory.Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		state, ok := sessions.Get(token)
		if !ok {
			logger.Debug("unknown session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionContextKey, state)
		c.Next()
	}
}

func currentSession(c *gin.Context) *memory.State {
	return c.MustGet(sessionContextKey).(*memory.State)
}
