package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CanonicalHost 將 www. 開頭的 host 永久導向 apex，保留 path 與 query
func CanonicalHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		if !strings.HasPrefix(strings.ToLower(host), "www.") {
			c.Next()
			return
		}

		target := requestScheme(c) + "://" + host[len("www."):] + c.Request.URL.RequestURI()
		c.Redirect(http.StatusPermanentRedirect, target)
		c.Abort()
	}
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
