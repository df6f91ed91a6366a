package handler

import (
	"net/http"

	"partylink/internal/model"
	"partylink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestHandler struct {
	service service.GuestService
}

func NewGuestHandler(service service.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

func (h *GuestHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/events/:eventID/guests")
	{
		router.GET("", h.List)
		router.POST("", h.Add)
		router.GET("/previous", h.Previous)
		router.POST("/previous", h.AddPrevious)
		router.PUT("/:token", h.Update)
		router.DELETE("/:token", h.Delete)
		router.PUT("/:token/status", h.SetStatus)
		router.POST("/:token/whatsapp", h.OpenWhatsApp)
	}
}

// guestScope 解析 host、eventID 與 token
func (h *GuestHandler) guestScope(c *gin.Context) (hostID, eventID uuid.UUID, token string, ok bool) {
	session, ok := requireSession(c)
	if !ok {
		return uuid.Nil, uuid.Nil, "", false
	}
	var uri GuestUri
	if err := BindUri(c, &uri); err != nil {
		return uuid.Nil, uuid.Nil, "", false
	}
	eventID, err := uuid.Parse(uri.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, uuid.Nil, "", false
	}
	return session.HostID, eventID, uri.Token, true
}

func (h *GuestHandler) List(c *gin.Context) {
	hostID, eventID, _, ok := h.guestScope(c)
	if !ok {
		return
	}
	list, err := h.service.ListGuests(c.Request.Context(), hostID, eventID)
	if err != nil {
		handleError(c, err, "ListGuests")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GuestHandler) Add(c *gin.Context) {
	hostID, eventID, _, ok := h.guestScope(c)
	if !ok {
		return
	}
	var req model.AddGuestRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	guest, err := h.service.AddGuest(c.Request.Context(), hostID, eventID, req)
	if err != nil {
		handleError(c, err, "AddGuest")
		return
	}
	c.JSON(http.StatusCreated, guest)
}

func (h *GuestHandler) Previous(c *gin.Context) {
	hostID, eventID, _, ok := h.guestScope(c)
	if !ok {
		return
	}
	guests, err := h.service.PreviousGuests(c.Request.Context(), hostID, eventID)
	if err != nil {
		handleError(c, err, "PreviousGuests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

func (h *GuestHandler) AddPrevious(c *gin.Context) {
	hostID, eventID, _, ok := h.guestScope(c)
	if !ok {
		return
	}
	var req model.AddPreviousGuestsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	result, err := h.service.AddPreviousGuests(c.Request.Context(), hostID, eventID, req)
	if err != nil {
		handleError(c, err, "AddPreviousGuests")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GuestHandler) Update(c *gin.Context) {
	hostID, eventID, token, ok := h.guestScope(c)
	if !ok {
		return
	}
	var req model.UpdateGuestRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	guest, err := h.service.UpdateGuest(c.Request.Context(), hostID, eventID, token, req)
	if err != nil {
		handleError(c, err, "UpdateGuest")
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (h *GuestHandler) Delete(c *gin.Context) {
	hostID, eventID, token, ok := h.guestScope(c)
	if !ok {
		return
	}
	if err := h.service.DeleteGuest(c.Request.Context(), hostID, eventID, token); err != nil {
		handleError(c, err, "DeleteGuest")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GuestHandler) SetStatus(c *gin.Context) {
	hostID, eventID, token, ok := h.guestScope(c)
	if !ok {
		return
	}
	var req model.SetAttendanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	guest, err := h.service.SetAttendance(c.Request.Context(), hostID, eventID, token, req.Status)
	if err != nil {
		handleError(c, err, "SetAttendance")
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (h *GuestHandler) OpenWhatsApp(c *gin.Context) {
	hostID, eventID, token, ok := h.guestScope(c)
	if !ok {
		return
	}
	share, err := h.service.OpenWhatsApp(c.Request.Context(), hostID, eventID, token)
	if err != nil {
		handleError(c, err, "OpenWhatsApp")
		return
	}
	c.JSON(http.StatusOK, share)
}
