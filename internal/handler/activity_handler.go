package handler

import (
	"net/http"

	"partylink/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

type ActivityHandler struct {
	service service.AuditService
}

func NewActivityHandler(service service.AuditService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/activity", h.List)
}

func (h *ActivityHandler) List(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var query ActivityQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	entries, err := h.service.RecentActivity(c.Request.Context(), session.HostID, query.Limit)
	if err != nil {
		handleError(c, err, "RecentActivity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
