package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/auth"
	"github.com/BruksfildServices01/hrms/internal/httperr"
)

const (
	ContextUserID         = "userID"
	ContextOrganisationID = "organisationID"
)

func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrganisationID, claims.OrgID)

		c.Next()
	}
}

// Caller returns the identity set by AuthMiddleware.
func Caller(c *gin.Context) (userID, organisationID uint) {
	return c.GetUint(ContextUserID), c.GetUint(ContextOrganisationID)
}
