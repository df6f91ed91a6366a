package handler

import (
	"net/http"

	"partylink/internal/model"
	"partylink/internal/service"

	"github.com/gin-gonic/gin"
)

type RSVPHandler struct {
	service service.RSVPService
}

func NewRSVPHandler(service service.RSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

// RegisterRoutes 公開路由，不需要 session
func (h *RSVPHandler) RegisterRoutes(r gin.IRouter, middlewares ...gin.HandlerFunc) {
	router := r.Group("/rsvp", middlewares...)
	{
		router.GET("/:token", h.Resolve)
		router.POST("/:token", h.Submit)
	}
}

func (h *RSVPHandler) Resolve(c *gin.Context) {
	view, err := h.service.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		handleError(c, err, "ResolveRSVP")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	var req model.SubmitRSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	view, err := h.service.Submit(c.Request.Context(), c.Param("token"), req.Status)
	if err != nil {
		handleError(c, err, "SubmitRSVP")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": model.RSVPSavedMessage,
		"rsvp":    view,
	})
}
