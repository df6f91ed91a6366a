package handler

import (
	"net/http"
	"net/url"

	"partylink/internal/auth"
	"partylink/internal/model"
	"partylink/internal/service"
	"partylink/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authFailedError   = "auth_failed"
	authFailedMessage = "Login link is invalid or expired. Please request a new code."
)

type AuthHandler struct {
	service  service.AuthService
	sessions *auth.SessionManager
}

func NewAuthHandler(service service.AuthService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRouter, limiter ...gin.HandlerFunc) {
	r.GET("/login", h.LoginView)

	router := r.Group("/auth")
	{
		router.GET("/callback", h.Callback)
		router.POST("/logout", h.Logout)
	}

	limited := router.Group("", limiter...)
	{
		limited.POST("/otp", h.RequestCode)
		limited.POST("/verify", h.VerifyCode)
	}
}

func (h *AuthHandler) LoginView(c *gin.Context) {
	c.JSON(http.StatusOK, model.LoginView{
		Next:    auth.SafeNextPath(c.Query("next")),
		Error:   c.Query("error"),
		Message: c.Query("message"),
	})
}

func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req model.RequestCodeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	next := auth.SafeNextPath(req.Next)
	if err := h.service.RequestCode(c.Request.Context(), req.Email, next); err != nil {
		handleError(c, err, "RequestCode")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "We sent a login code to your email",
		"next":    next,
	})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req model.VerifyCodeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	host, err := h.service.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		handleError(c, err, "VerifyCode")
		return
	}
	if !h.startSession(c, host) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"host": host,
		"next": auth.SafeNextPath(req.Next),
	})
}

// Callback magic link 登入；失敗時帶錯誤訊息回登入頁
func (h *AuthHandler) Callback(c *gin.Context) {
	next := auth.SafeNextPath(c.Query("next"))
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, next)
		return
	}

	host, err := h.service.ExchangeMagicLink(c.Request.Context(), code)
	if err != nil {
		logger.WithComponent("handler").Warn("magic link exchange failed",
			zap.String("operation", "Callback"),
			zap.Error(err),
		)
		c.Redirect(http.StatusFound, loginFailureURL(next))
		return
	}

	token, expiresAt, err := h.sessions.Issue(host)
	if err != nil {
		logger.WithComponent("handler").Error("failed to issue session", zap.Error(err))
		c.Redirect(http.StatusFound, loginFailureURL(next))
		return
	}
	h.sessions.SetCookie(c, token, expiresAt)
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) startSession(c *gin.Context, host *model.Host) bool {
	token, expiresAt, err := h.sessions.Issue(host)
	if err != nil {
		handleError(c, err, "IssueSession")
		return false
	}
	h.sessions.SetCookie(c, token, expiresAt)
	return true
}

func loginFailureURL(next string) string {
	values := url.Values{}
	values.Set("next", next)
	values.Set("error", authFailedError)
	values.Set("message", authFailedMessage)
	return "/login?" + values.Encode()
}
