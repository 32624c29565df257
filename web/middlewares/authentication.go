package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/security"
	"tmht.org/checkin/web/common"
)

const SessionCookie = "checkin.SessionCookie"

// Authentication checks for a valid session token, from the Authorization
// header or the session cookie.
func Authentication(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = parts[1]
		}

		claims, err := security.ParseSessionToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
