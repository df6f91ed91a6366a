package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"partylink/internal/auth"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/login"

// SessionGuard 沒有有效 session 時導向登入頁，next 只帶原本的 path
func SessionGuard(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.FromRequest(c)
		if err != nil {
			next := auth.SafeNextPath(c.Request.URL.Path)
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(next))
			c.Abort()
			return
		}

		auth.SetSession(c, session)
		c.Next()
	}
}

// RequirePrefix 掛在 engine 上，prefix 底下的路徑（包含未註冊的）都先經過 guard
func RequirePrefix(prefix string, guard gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			guard(c)
			return
		}
		c.Next()
	}
}
