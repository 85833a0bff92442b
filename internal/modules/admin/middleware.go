package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"metagrow/internal/pkg/jwt"
	"metagrow/internal/pkg/response"
)

// SessionCookie carries the signed admin session token.
const SessionCookie = "admin_session"

// RequireAdmin guards JSON endpoints. It accepts the admin token either as a
// Bearer header or from the session cookie; the token format and secret are
// the same, only the transport differs. Anonymous callers get a generic 401.
func RequireAdmin(sessions *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			response.Message(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := sessions.ValidateToken(token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
