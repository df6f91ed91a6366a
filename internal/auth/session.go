package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"partylink/config"
	"partylink/internal/model"
	apperrors "partylink/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	issuer     = "partylink"
	contextKey = "partylink.session"
)

// Session 已登入的 host，由 SessionGuard 放進 gin.Context
type Session struct {
	HostID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type SessionManager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewSessionManager(cfg config.SessionConfig) *SessionManager {
	return &SessionManager{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
	}
}

// Issue 簽發 HS256 session token
func (m *SessionManager) Issue(host *model.Host) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Email: host.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   host.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, expiresAt, nil
}

func (m *SessionManager) Parse(tokenString string) (*Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidSession
	}
	if claims.Issuer != issuer || claims.ExpiresAt == nil {
		return nil, apperrors.ErrInvalidSession
	}

	hostID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	return &Session{
		HostID:    hostID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// FromRequest 先讀 cookie，再讀 Authorization: Bearer
func (m *SessionManager) FromRequest(c *gin.Context) (*Session, error) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return nil, apperrors.ErrUnauthorized
		}
		token = strings.TrimPrefix(header, "Bearer ")
	}
	return m.Parse(token)
}

func (m *SessionManager) SetCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, maxAge, "/", "", m.secure, true)
}

func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

func SetSession(c *gin.Context, session *Session) {
	c.Set(contextKey, session)
}

func SessionFrom(c *gin.Context) (*Session, error) {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	session, ok := value.(*Session)
	if !ok || session == nil {
		return nil, errors.Join(apperrors.ErrUnauthorized, errors.New("unexpected session type"))
	}
	return session, nil
}
