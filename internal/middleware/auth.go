package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/util"

	"github.com/gin-gonic/gin"
)

// CookieName is where the session JWT lives when the browser flow is used.
const CookieName = "rai_token"

// CurrentUserKey is the gin context key holding the authenticated *models.User.
const CurrentUserKey = "currentUser"

// Auth validates the session JWT and puts the authenticated user into the
// request context. Handlers below this middleware only ever see a resolved
// user id; none of them inspect tokens or cookies themselves.
func Auth(jwtSecret string, directory *ledger.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL query ?token=xxx (downloads cannot set headers)
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		// 3) Cookie set by the OAuth callback
		if tokenStr == "" {
			if cookie, err := c.Cookie(CookieName); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "unauthenticated")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, "session_expired")
			c.Abort()
			return
		}

		user, err := directory.Get(c.Request.Context(), claims.UserID)
		if err != nil {
			if err == ledger.ErrUserNotFound {
				util.Error(c, http.StatusUnauthorized, "unknown_user")
			} else {
				util.Error(c, http.StatusInternalServerError, "storage_failure")
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
