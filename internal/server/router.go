package server

import (
	"partylink/config"
	"partylink/internal/auth"
	"partylink/internal/cache"
	"partylink/internal/handler"
	"partylink/internal/middleware"
	"partylink/internal/service"

	"github.com/gin-gonic/gin"
)

// Dependencies 組裝路由所需的 service 與基礎元件
type Dependencies struct {
	Events      service.EventService
	Guests      service.GuestService
	RSVP        service.RSVPService
	Auth        service.AuthService
	Audit       service.AuditService
	Sessions    *auth.SessionManager
	RateLimiter cache.RateLimiter
	RateLimit   config.RateLimitConfig
	Database    handler.HealthCheck
	Redis       handler.HealthCheck
}

const hostPrefix = "/host"

func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.CanonicalHost(),
		middleware.RequirePrefix(hostPrefix, middleware.SessionGuard(deps.Sessions)),
	)

	handler.NewHealthHandler(deps.Database, deps.Redis).RegisterRoutes(r)

	var authLimit, rsvpLimit []gin.HandlerFunc
	if deps.RateLimiter != nil {
		authLimit = append(authLimit, middleware.RateLimit(deps.RateLimiter, "auth", deps.RateLimit.AuthRequests, deps.RateLimit.AuthWindow))
		rsvpLimit = append(rsvpLimit, middleware.RateLimit(deps.RateLimiter, "rsvp", deps.RateLimit.RSVPRequests, deps.RateLimit.RSVPWindow))
	}

	handler.NewAuthHandler(deps.Auth, deps.Sessions).RegisterRoutes(r, authLimit...)
	handler.NewRSVPHandler(deps.RSVP).RegisterRoutes(r, rsvpLimit...)

	host := r.Group(hostPrefix)
	{
		handler.NewEventHandler(deps.Events).RegisterRoutes(host)
		handler.NewGuestHandler(deps.Guests).RegisterRoutes(host)
		handler.NewActivityHandler(deps.Audit).RegisterRoutes(host)
	}

	return r
}
