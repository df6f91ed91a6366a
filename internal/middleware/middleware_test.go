package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partylink/config"
	"partylink/internal/auth"
	cacheMocks "partylink/internal/cache/mocks"
	"partylink/internal/middleware"
	"partylink/internal/model"
	"partylink/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestCanonicalHost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CanonicalHost())
	router.GET("/*path", okHandler)

	t.Run("Redirects www to apex", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rsvp/abc?x=1", nil)
		req.Host = "www.partylink.co"
		req.Header.Set("X-Forwarded-Proto", "https")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusPermanentRedirect, w.Code)
		assert.Equal(t, "https://partylink.co/rsvp/abc?x=1", w.Header().Get("Location"))
	})

	t.Run("Apex passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rsvp/abc", nil)
		req.Host = "partylink.co"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSessionGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionManager(config.SessionConfig{
		Secret:     "test-secret",
		TTL:        time.Hour,
		CookieName: "partylink_session",
	})

	hostID := uuid.New()
	router := gin.New()
	host := router.Group("/host", middleware.SessionGuard(sessions))
	host.GET("/events", func(c *gin.Context) {
		session, err := auth.SessionFrom(c)
		require.NoError(t, err)
		c.String(http.StatusOK, session.HostID.String())
	})

	t.Run("Redirects to login with next", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events?tab=past", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		// query 不帶入 next
		assert.Equal(t, "/login?next=%2Fhost%2Fevents", w.Header().Get("Location"))
	})

	t.Run("Valid session passes", func(t *testing.T) {
		token, _, err := sessions.Issue(&model.Host{ID: hostID, Email: "host@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/host/events", nil)
		req.AddCookie(&http.Cookie{Name: "partylink_session", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, hostID.String(), w.Body.String())
	})

	t.Run("Tampered session redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/host/events", nil)
		req.AddCookie(&http.Cookie{Name: "partylink_session", Value: "forged"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(limiter *cacheMocks.MockRateLimiter) *gin.Engine {
		router := gin.New()
		router.GET("/rsvp/:token", middleware.RateLimit(limiter, "rsvp", 5, time.Minute), okHandler)
		return router
	}

	t.Run("Allowed", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "rsvp:192.0.2.1", 5, time.Minute).Return(true, time.Duration(0), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/rsvp/abc", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		setup(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Blocked with Retry-After", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "rsvp:192.0.2.1", 5, time.Minute).Return(false, 1500*time.Millisecond, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/rsvp/abc", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		setup(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
	})

	t.Run("Fails open when limiter errors", func(t *testing.T) {
		limiter := cacheMocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything, 5, time.Minute).Return(false, time.Duration(0), errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/rsvp/abc", nil)
		w := httptest.NewRecorder()
		setup(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequirePrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionManager(config.SessionConfig{
		Secret:     "test-secret",
		TTL:        time.Hour,
		CookieName: "partylink_session",
	})

	router := gin.New()
	router.Use(middleware.RequirePrefix("/host", middleware.SessionGuard(sessions)))
	router.GET("/health", okHandler)
	router.Group("/host").GET("/events", okHandler)

	tests := []struct {
		name     string
		path     string
		code     int
		location string
	}{
		{"Registered", "/host/events", http.StatusFound, "/login?next=%2Fhost%2Fevents"},
		{"Unregistered", "/host/settings", http.StatusFound, "/login?next=%2Fhost%2Fsettings"},
		{"Root", "/host", http.StatusFound, "/login?next=%2Fhost"},
		{"RootSlash", "/host/", http.StatusFound, "/login?next=%2Fhost%2F"},
		{"OtherPrefix", "/hostile", http.StatusNotFound, ""},
		{"Public", "/health", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	t.Run("Valid session reaches unregistered path", func(t *testing.T) {
		token, _, err := sessions.Issue(&model.Host{ID: uuid.New(), Email: "host@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/host/settings", nil)
		req.AddCookie(&http.Cookie{Name: "partylink_session", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestLogger_UnmatchedRouteLogsPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	original := logger.L
	logger.L = zap.New(core)
	t.Cleanup(func() { logger.L = original })

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.GET("/health", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/health", entries[0].ContextMap()["path"])
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.GET("/health", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
