package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partylink/internal/handler"
	"partylink/internal/model"
	"partylink/internal/service/mocks"
	apperrors "partylink/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventTestRouter(mockService *mocks.MockEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	host := router.Group("/host", withTestSession())
	handler.NewEventHandler(mockService).RegisterRoutes(host)

	return router
}

func TestListEvents(t *testing.T) {
	t.Run("Success - empty list", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, testHostID).Return(&model.EventList{
			Events:       []*model.Event{},
			EmptyMessage: model.NoEventsMessage,
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body model.EventList
		decodeBody(t, w.Body, &body)
		assert.Equal(t, "There are no events created", body.EmptyMessage)
		assert.Empty(t, body.Events)
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, testHostID).Return(nil, errors.New("connection refused")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := model.CreateEventRequest{Title: "Tom's 7th Birthday", StartsAt: "2026-11-07T15:00"}
		mockService.EXPECT().Create(mock.Anything, testHostID, req).Return(&model.Event{
			ID:       testEventID,
			HostID:   testHostID,
			Title:    req.Title,
			StartsAt: time.Date(2026, 11, 7, 7, 0, 0, 0, time.UTC),
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/host/events", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Tom's 7th Birthday")
	})

	t.Run("Failed - title required", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, testHostID, mock.Anything).Return(nil, apperrors.ErrEventTitleRequired).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/host/events", model.CreateEventRequest{StartsAt: "2026-11-07T15:00"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a party name")
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/host/events", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Failed - invalid id", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Get(mock.Anything, testHostID, testEventID).Return(nil, apperrors.ErrEventNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events/"+testEventID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		title := "Tom's 8th Birthday"
		mockService.EXPECT().Update(mock.Anything, testHostID, testEventID, model.UpdateEventRequest{Title: &title}).
			Return(&model.Event{ID: testEventID, Title: title}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPut, "/host/events/"+testEventID.String(), map[string]string{"title": title}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPut, "/host/events/"+testEventID.String(), map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteEvent(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(mockService)

	mockService.EXPECT().Delete(mock.Anything, testHostID, testEventID).Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/host/events/"+testEventID.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEventHandler_NoSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewEventHandler(mocks.NewMockEventService(t)).RegisterRoutes(router.Group("/host"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/host/events", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
