package handler

import (
	"errors"
	"net/http"

	"partylink/internal/auth"
	apperrors "partylink/pkg/app_errors"
	"partylink/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// GuestUri 訪客相關路由的 path 參數
type GuestUri struct {
	EventID string `uri:"eventID" binding:"required,uuid"`
	Token   string `uri:"token"`
}

// requireSession 取得 SessionGuard 放入的 session；缺少時回 401
func requireSession(c *gin.Context) (*auth.Session, bool) {
	session, err := auth.SessionFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return session, true
}

func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, false
	}
	return eventID, true
}

// handleError sentinel error 對應 HTTP 狀態與固定訊息，未知錯誤不回傳內容
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrGuestNotFound):
		log.Warn("Guest not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
	case errors.Is(err, apperrors.ErrInvalidInviteLink):
		log.Warn("Invalid invite link")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired invite link."})
	case errors.Is(err, apperrors.ErrEventTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a party name"})
	case errors.Is(err, apperrors.ErrEventStartRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select date & time"})
	case errors.Is(err, apperrors.ErrInvalidStartsAt):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date & time"})
	case errors.Is(err, apperrors.ErrChildNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Child name is required"})
	case errors.Is(err, apperrors.ErrNoGuestsSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one guest."})
	case errors.Is(err, apperrors.ErrInvalidAttendanceStatus), errors.Is(err, apperrors.ErrInvalidRSVPStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	case errors.Is(err, apperrors.ErrNotWhatsAppInvite):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This guest is not invited via WhatsApp"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrGuestAlreadyInvited):
		log.Warn("Guest already invited")
		c.JSON(http.StatusConflict, gin.H{"error": "Guest already invited to this event"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrInvalidCode), errors.Is(err, apperrors.ErrMagicLinkNotFound):
		log.Warn("Invalid login code")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
	case errors.Is(err, apperrors.ErrTooManyAttempts):
		log.Warn("Too many login attempts")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, please request a new code"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
