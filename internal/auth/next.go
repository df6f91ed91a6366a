package auth

import (
	"net/url"
	"strings"
)

const DefaultNextPath = "/host/events"

// SafeNextPath 只接受站內絕對路徑，避免 open redirect
func SafeNextPath(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") {
		return DefaultNextPath
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DefaultNextPath
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultNextPath
	}
	return next
}
