package handler

import (
	"context"
	"net/http"
	"time"

	"partylink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	database HealthCheck
	redis    HealthCheck
}

func NewHealthHandler(database, redis HealthCheck) *HealthHandler {
	return &HealthHandler{database: database, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	database := runCheck(ctx, "database", h.database)
	redis := runCheck(ctx, "redis", h.redis)
	ok := database == "ok" && redis == "ok"

	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"ok":       ok,
		"database": database,
		"redis":    redis,
	})
}

func runCheck(ctx context.Context, name string, check HealthCheck) string {
	if check == nil {
		return "unconfigured"
	}
	if err := check(ctx); err != nil {
		logger.WithComponent("handler").Warn("health check failed", zap.String("dependency", name), zap.Error(err))
		return "error"
	}
	return "ok"
}
