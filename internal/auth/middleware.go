package auth

import (
	"fmt"
	"net/http"
	"strings"

	"gig-hire/utils"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key holding the verified actor id
const ActorKey = "actor_id"

// Credential extracts the session token from the named cookie or from an
// "Authorization: Bearer" header, in that order.
func Credential(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireActor aborts with 401 unless the request carries a valid credential
func RequireActor(v Verifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, err := v.Verify(Credential(c, cookieName))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("authentication required: %w", err), "authentication required")
			utils.Warn("RequireActor: rejected request", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(ActorKey, actorID)
		c.Next()
	}
}

// ActorID returns the verified actor set by RequireActor
func ActorID(c *gin.Context) string {
	return c.GetString(ActorKey)
}
