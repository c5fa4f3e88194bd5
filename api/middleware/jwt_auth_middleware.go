package middleware

import (
	"net/http"
	"strings"

	"github.com/catalogo-app/recommendation-backend/api/controller"
	"github.com/catalogo-app/recommendation-backend/internal/tokenutil"
	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			authorized, _ := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				userID, err := tokenutil.ExtractIDFromToken(authToken, secret)
				if err != nil {
					controller.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
					c.Abort()
					return
				}
				c.Set("x-user-id", userID)
				c.Next()
				return
			}
		}
		controller.ErrorResponse(c, http.StatusUnauthorized, "NOT_AUTHORIZED", "not authorized")
		c.Abort()
	}
}
