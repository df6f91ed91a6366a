package handler

import (
	"net/http"

	"partylink/internal/model"
	"partylink/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// RegisterRoutes 掛在已通過 SessionGuard 的 /host group 下
func (h *EventHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/events")
	{
		router.GET("", h.List)
		router.POST("", h.Create)
		router.GET("/:eventID", h.Get)
		router.PUT("/:eventID", h.Update)
		router.DELETE("/:eventID", h.Delete)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	list, err := h.service.List(c.Request.Context(), session.HostID)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EventHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(c.Request.Context(), session.HostID, eventID)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c.Request.Context(), session.HostID, req)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Title == nil && req.StartsAt == nil && req.LocationName == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of title, starts_at or location_name is required"})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), session.HostID, eventID, req)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), session.HostID, eventID); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.Status(http.StatusNoContent)
}
