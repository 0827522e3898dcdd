package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mahadevaelectronics/repair-api/internal/auth"
	"github.com/mahadevaelectronics/repair-api/internal/httperr"
)

const ContextAdminID = "adminID"

func AuthMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(401, httperr.HTTPError{
				Code:    "missing_authorization_header",
				Message: "authorization header is required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(401, httperr.HTTPError{
				Code:    "invalid_authorization_header",
				Message: "expected a bearer token",
			})
			return
		}

		adminID, err := svc.ParseToken(parts[1])
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(401, httperr.HTTPError{
				Code:    "invalid_token",
				Message: "token is invalid or expired",
			})
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Next()
	}
}
