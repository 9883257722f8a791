package middleware

import (
	"log"
	"net/http"
	"strings"

	"autoshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys populated by Identity for downstream handlers.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// Identity extracts the caller identity forwarded by the API gateway in the
// X-User-* headers. The gateway terminates authentication; this service only
// consumes the asserted identity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, strings.TrimSpace(c.GetHeader("X-User-Id")))
		c.Set(ContextUserEmail, strings.TrimSpace(c.GetHeader("X-User-Email")))
		c.Set(ContextUserRole, strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Role"))))
		c.Next()
	}
}

// RequireRoles rejects requests whose asserted role is not in the allow list.
// A missing identity is a 401; a known identity with the wrong role is a 403.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		role := c.GetString(ContextUserRole)
		if userID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if _, ok := allowed[role]; !ok {
			log.Printf("[auth][middleware] role denied user_id=%s role=%s path=%s", userID, role, c.FullPath())
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Caller role not permitted", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
