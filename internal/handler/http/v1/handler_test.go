package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/auth"
	"github.com/shenikar/travel_tracking_system/internal/config"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	consent  *mocks.MockConsentService
	tracking *mocks.MockTrackingService
	trip     *mocks.MockTripService
	admin    *mocks.MockAdminService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*gin.Engine, handlerMocks, *config.Config) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		consent:  mocks.NewMockConsentService(ctrl),
		tracking: mocks.NewMockTrackingService(ctrl),
		trip:     mocks.NewMockTripService(ctrl),
		admin:    mocks.NewMockAdminService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTIssuer:     "travel-tracking",
		JWTTTL:        time.Hour,
		RetentionDays: 30,
	}

	handler := NewHandler(m.consent, m.tracking, m.trip, m.admin, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, m, cfg
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, cfg *config.Config, userID uuid.UUID, isAdmin bool) map[string]string {
	t.Helper()
	token, err := auth.GenerateAccessToken(cfg, userID, isAdmin)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/tracking/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization header required")
}

func TestAuth_InvalidFormat(t *testing.T) {
	router, _, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/tracking/stats", nil, map[string]string{"Authorization": "Token abc"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header format")
}

func TestAuth_WrongSecret(t *testing.T) {
	router, _, cfg := newTestHandler(t)
	other := *cfg
	other.JWTSecret = "another-secret"

	w := makeRequest(router, "GET", "/api/v1/tracking/stats", nil, bearer(t, &other, uuid.New(), false))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAdmin_RequiresAdminToken(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/admin/statistics", nil, bearer(t, cfg, uuid.New(), false))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestHealthCheck(t *testing.T) {
	router, _, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSaveLocation_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()
	sampleID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentGPS).Return(true, nil)
	m.tracking.EXPECT().
		SaveLocation(gomock.Any(), userID, gomock.Any(), true).
		DoAndReturn(func(_ context.Context, id uuid.UUID, r models.LocationReading, _ bool) (*models.LocationSample, error) {
			assert.Equal(t, 52.52, r.Latitude)
			assert.Equal(t, 13.405, r.Longitude)
			require.NotNil(t, r.Accuracy)
			assert.Equal(t, 5.0, *r.Accuracy)
			return &models.LocationSample{ID: sampleID, UserID: id, Latitude: r.Latitude, Longitude: r.Longitude}, nil
		})

	body := jsonBody(t, map[string]any{"latitude": 52.52, "longitude": 13.405, "accuracy": 5})
	w := makeRequest(router, "POST", "/api/v1/tracking/location", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Location saved", resp.Message)
	require.NotNil(t, resp.Location)
	assert.Equal(t, sampleID, resp.Location.ID)
}

func TestSaveLocation_ResolveAddressDisabled(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentGPS).Return(true, nil)
	m.tracking.EXPECT().
		SaveLocation(gomock.Any(), userID, gomock.Any(), false).
		Return(&models.LocationSample{ID: uuid.New()}, nil)

	body := jsonBody(t, map[string]any{"latitude": 1.5, "longitude": 2.5, "resolve_address": false})
	w := makeRequest(router, "POST", "/api/v1/tracking/location", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSaveLocation_NoConsent(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentGPS).Return(false, nil)
	m.tracking.EXPECT().SaveLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := jsonBody(t, map[string]any{"latitude": 52.52, "longitude": 13.405})
	w := makeRequest(router, "POST", "/api/v1/tracking/location", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "GPS consent not granted")
}

func TestSaveLocation_ValidationError(t *testing.T) {
	router, m, cfg := newTestHandler(t)

	m.tracking.EXPECT().SaveLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name string
		body string
	}{
		{"latitude out of range", `{"latitude": 91, "longitude": 10}`},
		{"longitude missing", `{"latitude": 10}`},
		{"broken json", `{"latitude": 10`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "POST", "/api/v1/tracking/location", bytes.NewBufferString(tt.body), bearer(t, cfg, uuid.New(), false))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSaveMotion_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentMotionActivity).Return(true, nil)
	m.tracking.EXPECT().
		SaveMotion(gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, r models.MotionReading, activityType string, confidence float64, _ *uuid.UUID) (*models.MotionSample, error) {
			require.NotNil(t, r.Acceleration.X)
			return &models.MotionSample{ID: uuid.New(), UserID: id, Reading: r, ActivityType: activityType, Confidence: confidence}, nil
		})

	body := jsonBody(t, map[string]any{"acceleration": map[string]float64{"x": 3, "y": 4, "z": 0}})
	w := makeRequest(router, "POST", "/api/v1/tracking/motion", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp MotionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Motion data saved", resp.Message)
	require.NotNil(t, resp.Motion)
	assert.Equal(t, "running", resp.DetectedActivity.Type)
	assert.Equal(t, 0.8, resp.DetectedActivity.Confidence)
}

func TestSaveMotion_NoConsent(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentMotionActivity).Return(false, nil)

	body := jsonBody(t, map[string]any{"acceleration": map[string]float64{"x": 1}})
	w := makeRequest(router, "POST", "/api/v1/tracking/motion", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Motion consent not granted")
}

func TestSaveMotion_Empty(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentMotionActivity).Return(true, nil)

	w := makeRequest(router, "POST", "/api/v1/tracking/motion", bytes.NewBufferString(`{}`), bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No motion data provided")
}

func TestSaveMotion_ConsentLookupFails(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().HasConsent(gomock.Any(), userID, models.ConsentMotionActivity).Return(false, errors.New("db down"))

	body := jsonBody(t, map[string]any{"acceleration": map[string]float64{"x": 1}})
	w := makeRequest(router, "POST", "/api/v1/tracking/motion", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSaveBatch_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()
	locationID := uuid.New()
	motionID := uuid.New()

	m.tracking.EXPECT().
		ProcessBatch(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, batch models.BatchInput) (*models.BatchResult, error) {
			require.NotNil(t, batch.Location)
			require.NotNil(t, batch.Motion)
			assert.Equal(t, 48.85, batch.Location.Latitude)
			return &models.BatchResult{
				Location: &models.BatchLocationResult{ID: locationID, Address: "Rue de Rivoli, Paris"},
				Motion:   &models.BatchMotionResult{ID: motionID, ActivityType: "driving", Confidence: 0.9},
			}, nil
		})

	body := jsonBody(t, map[string]any{
		"location": map[string]any{"latitude": 48.85, "longitude": 2.35, "speed": 15},
		"motion":   map[string]any{"acceleration": map[string]float64{"x": 0.5}},
	})
	w := makeRequest(router, "POST", "/api/v1/tracking/batch", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Batch data processed", resp.Message)
	require.NotNil(t, resp.Result.Location)
	assert.Equal(t, "Rue de Rivoli, Paris", resp.Result.Location.Address)
	require.NotNil(t, resp.Result.Motion)
	assert.Equal(t, "driving", resp.Result.Motion.Activity.Type)
}

func TestSaveBatch_NoData(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/tracking/batch", bytes.NewBufferString(`{}`), bearer(t, cfg, uuid.New(), false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No data provided")
}

func TestGetHistory_QueryParams(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.tracking.EXPECT().GetHistory(gomock.Any(), userID, 6, 10).Return(&models.History{
		Summary: models.HistorySummary{TimeRangeHours: 6},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/history?hours=6&limit=10", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time_range_hours":6`)
}

func TestGetHistory_Defaults(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.tracking.EXPECT().GetHistory(gomock.Any(), userID, 24, 100).Return(&models.History{}, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/history?hours=abc", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTrackingStats(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.tracking.EXPECT().GetStats(gomock.Any(), userID).Return(&models.UserStats{
		ActivityBreakdown: map[string]int{"walking": 3},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/stats", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"walking":3`)
}

func TestGetTimeline_InvalidDate(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/tracking/timeline?date=15-03-2024", nil, bearer(t, cfg, uuid.New(), false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
}

func TestGetTimeline_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	m.tracking.EXPECT().GetLocationTimeline(gomock.Any(), userID, day).Return([]models.TimelinePoint{
		{Timestamp: day.Add(time.Hour), Latitude: 1, Longitude: 2, Address: "Near 1.0000, 2.0000"},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/timeline?date=2024-03-15", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	var points []models.TimelinePoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	assert.Len(t, points, 1)
}

func TestGetDistance(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	m.tracking.EXPECT().GetDistanceTraveled(gomock.Any(), userID, day).Return(12.5, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/distance?date=2024-03-15", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2024-03-15","distance_km":12.5}`, w.Body.String())
}

func TestGetFrequentLocations(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.tracking.EXPECT().GetFrequentLocations(gomock.Any(), userID, 7, 2).Return([]models.FrequentLocation{
		{Location: "Berlin, Mitte", Visits: 4},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/tracking/frequent?days=7&min_visits=2", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Berlin, Mitte")
}

func TestGetConsent_NotFoundReturnsEmpty(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().GetConsent(gomock.Any(), userID).Return(nil, fmt.Errorf("service: %w", models.ErrNotFound))

	w := makeRequest(router, "GET", "/api/v1/consent", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestSetConsent_PartialUpdate(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.consent.EXPECT().
		SetConsent(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error) {
			require.NotNil(t, update.GPS)
			assert.True(t, *update.GPS)
			assert.Nil(t, update.Notifications)
			assert.Nil(t, update.MotionActivity)
			return &models.ConsentRecord{UserID: id, GPS: true}, nil
		})

	w := makeRequest(router, "POST", "/api/v1/consent", bytes.NewBufferString(`{"gps": true}`), bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gps":true`)
}

func TestCreateTrip_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()
	start := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	m.trip.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Equal(t, userID, trip.UserID)
			assert.Equal(t, "Home", trip.Origin)
			trip.ID = uuid.New()
			trip.TripNumber = "TRIP-0042"
			return trip, nil
		})

	body := jsonBody(t, CreateTripRequest{
		Origin:       "Home",
		Destination:  "Office",
		StartTime:    start,
		EndTime:      start.Add(40 * time.Minute),
		ModeOfTravel: "bus",
	})
	w := makeRequest(router, "POST", "/api/v1/trips", body, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "TRIP-0042")
}

func TestCreateTrip_EndBeforeStart(t *testing.T) {
	router, _, cfg := newTestHandler(t)
	start := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	body := jsonBody(t, CreateTripRequest{
		Origin:       "Home",
		Destination:  "Office",
		StartTime:    start,
		EndTime:      start.Add(-time.Minute),
		ModeOfTravel: "car",
	})
	w := makeRequest(router, "POST", "/api/v1/trips", body, bearer(t, cfg, uuid.New(), false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EndTime")
}

func TestCreateTrip_Conflict(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	start := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	m.trip.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("service: %w", models.ErrConflict))

	body := jsonBody(t, CreateTripRequest{
		TripNumber:   "TRIP-0001",
		Origin:       "Home",
		Destination:  "Office",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		ModeOfTravel: "train",
	})
	w := makeRequest(router, "POST", "/api/v1/trips", body, bearer(t, cfg, uuid.New(), false))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListTrips(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	userID := uuid.New()

	m.trip.EXPECT().ListTrips(gomock.Any(), userID).Return([]*models.Trip{{TripNumber: "TRIP-0007"}}, nil)

	w := makeRequest(router, "GET", "/api/v1/trips", nil, bearer(t, cfg, userID, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TRIP-0007")
}

func TestAdminDeleteUser_Success(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	target := uuid.New()

	m.admin.EXPECT().DeleteUserCascade(gomock.Any(), target).Return(&models.UserDeletion{
		UserID:  target,
		Email:   "user@example.com",
		Deleted: models.DeletionStats{Locations: 3},
	}, nil)

	w := makeRequest(router, "DELETE", "/api/v1/admin/users/"+target.String(), nil, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestAdminDeleteUser_NotFound(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	target := uuid.New()

	m.admin.EXPECT().DeleteUserCascade(gomock.Any(), target).Return(nil, fmt.Errorf("service: %w", models.ErrNotFound))

	w := makeRequest(router, "DELETE", "/api/v1/admin/users/"+target.String(), nil, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteUser_InvalidID(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	w := makeRequest(router, "DELETE", "/api/v1/admin/users/not-a-uuid", nil, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user id")
}

func TestAdminBulkDelete(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	a, b := uuid.New(), uuid.New()

	m.admin.EXPECT().BulkDelete(gomock.Any(), []uuid.UUID{a, b}).Return(&models.BulkDeleteResult{
		DeletedCount: 1,
		FailedCount:  1,
		Failed:       []models.DeletionFailure{{UserID: b, Reason: "user not found"}},
	}, nil)

	body := jsonBody(t, BulkDeleteRequest{UserIDs: []uuid.UUID{a, b}})
	w := makeRequest(router, "POST", "/api/v1/admin/users/bulk-delete", body, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestAdminBulkDelete_EmptyList(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/admin/users/bulk-delete", bytes.NewBufferString(`{"user_ids": []}`), bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminOverrideConsent(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	adminID := uuid.New()
	target := uuid.New()

	m.consent.EXPECT().
		OverrideConsent(gomock.Any(), adminID, target, gomock.Any(), "user request by phone").
		DoAndReturn(func(_ context.Context, _, id uuid.UUID, update models.ConsentUpdate, _ string) (*models.ConsentRecord, error) {
			require.NotNil(t, update.GPS)
			assert.False(t, *update.GPS)
			return &models.ConsentRecord{UserID: id}, nil
		})

	body := bytes.NewBufferString(`{"gps": false, "reason": "user request by phone"}`)
	w := makeRequest(router, "PUT", "/api/v1/admin/users/"+target.String()+"/consent", body, bearer(t, cfg, adminID, true))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOverrideConsent_ReasonRequired(t *testing.T) {
	router, _, cfg := newTestHandler(t)

	body := bytes.NewBufferString(`{"gps": false}`)
	w := makeRequest(router, "PUT", "/api/v1/admin/users/"+uuid.NewString()+"/consent", body, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Reason")
}

func TestAdminStatistics_ServiceError(t *testing.T) {
	router, m, cfg := newTestHandler(t)

	m.admin.EXPECT().GetDatabaseStatistics(gomock.Any()).Return(nil, errors.New("query failed"))

	w := makeRequest(router, "GET", "/api/v1/admin/statistics", nil, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminScheduleGeocodingRetry(t *testing.T) {
	router, m, cfg := newTestHandler(t)
	target := uuid.New()

	m.admin.EXPECT().
		ScheduleGeocodingRetry(gomock.Any(), &target, 50).
		Return(&models.MaintenanceJob{Kind: models.JobRetryGeocoding, UserID: &target, Limit: 50}, nil)

	body := jsonBody(t, RetryGeocodingRequest{UserID: &target, Limit: 50})
	w := makeRequest(router, "POST", "/api/v1/admin/geocoding/retry", body, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "retry_geocoding")
}

func TestAdminScheduleCleanup_DefaultRetention(t *testing.T) {
	router, m, cfg := newTestHandler(t)

	m.admin.EXPECT().
		ScheduleCleanup(gomock.Any(), cfg.RetentionDays).
		Return(&models.MaintenanceJob{Kind: models.JobCleanup, Days: cfg.RetentionDays}, nil)

	w := makeRequest(router, "POST", "/api/v1/admin/cleanup", nil, bearer(t, cfg, uuid.New(), true))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "Cleanup scheduled")
}
