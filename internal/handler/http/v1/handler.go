package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/travel_tracking_system/internal/activity"
	"github.com/shenikar/travel_tracking_system/internal/config"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

var consentDeniedMessages = map[models.ConsentKind]string{
	models.ConsentGPS:            "GPS consent not granted",
	models.ConsentMotionActivity: "Motion consent not granted",
}

type Handler struct {
	consentService  service.ConsentService
	trackingService service.TrackingService
	tripService     service.TripService
	adminService    service.AdminService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	consentService service.ConsentService,
	trackingService service.TrackingService,
	tripService service.TripService,
	adminService service.AdminService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		consentService:  consentService,
		trackingService: trackingService,
		tripService:     tripService,
		adminService:    adminService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Conflict with existing resource")
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON тело и проверяет его валидатором
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// requireConsent проверяет согласие; при отказе отвечает 403
func (h *Handler) requireConsent(c *gin.Context, log *logrus.Entry, kind models.ConsentKind) bool {
	allowed, err := h.consentService.HasConsent(c.Request.Context(), currentUserID(c), kind)
	if err != nil {
		h.respondError(c, log, err)
		return false
	}
	if !allowed {
		log.WithField("kind", kind).Warn("Consent not granted")
		c.JSON(http.StatusForbidden, gin.H{"error": consentDeniedMessages[kind]})
		return false
	}
	return true
}

// parseDate читает параметр date в формате YYYY-MM-DD; пустой означает сегодня
func parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// @Summary Save location
// @Description Save a GPS reading for the current user. Requires GPS consent.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationRequest true "GPS reading"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "GPS consent not granted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/location [post]
func (h *Handler) saveLocation(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "saveLocation", "user_id": currentUserID(c)})

	var input LocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if !h.requireConsent(c, log, models.ConsentGPS) {
		return
	}

	resolve := input.ResolveAddress == nil || *input.ResolveAddress
	sample, err := h.trackingService.SaveLocation(c.Request.Context(), currentUserID(c), *DTOToLocationReading(&input), resolve)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, LocationResponse{Message: "Location saved", Location: sample})
}

// @Summary Save motion
// @Description Save a motion reading, classified into an activity type. Requires motion consent.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param motion body MotionRequest true "Motion reading"
// @Success 201 {object} MotionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Motion consent not granted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/motion [post]
func (h *Handler) saveMotion(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "saveMotion", "user_id": currentUserID(c)})

	var input MotionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if !h.requireConsent(c, log, models.ConsentMotionActivity) {
		return
	}

	reading := DTOToMotionReading(&input)
	if reading.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No motion data provided"})
		return
	}
	activityType, confidence := activity.Classify(reading, nil)

	sample, err := h.trackingService.SaveMotion(c.Request.Context(), currentUserID(c), *reading, string(activityType), confidence, nil)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, MotionResponse{
		Message: "Motion data saved",
		Motion:  sample,
		DetectedActivity: DetectedActivity{
			Type:       sample.ActivityType,
			Confidence: sample.Confidence,
		},
	})
}

// @Summary Save batch
// @Description Save a location and/or motion reading in one request. Parts without consent are skipped.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body BatchRequest true "Batch"
// @Success 201 {object} BatchResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/batch [post]
func (h *Handler) saveBatch(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "saveBatch", "user_id": currentUserID(c)})

	var input BatchRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if input.Location == nil && input.Motion == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	result, err := h.trackingService.ProcessBatch(c.Request.Context(), currentUserID(c), models.BatchInput{
		Location: DTOToLocationReading(input.Location),
		Motion:   DTOToMotionReading(input.Motion),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, BatchResponse{Message: "Batch data processed", Result: ModelToBatchResponse(result)})
}

// @Summary Tracking history
// @Description Locations and motions of the current user within the last hours, newest first.
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Param hours query int false "Time window in hours" default(24)
// @Param limit query int false "Max items per list" default(100)
// @Success 200 {object} models.History
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getHistory", "user_id": currentUserID(c)})

	history, err := h.trackingService.GetHistory(c.Request.Context(), currentUserID(c), queryInt(c, "hours", 24), queryInt(c, "limit", 100))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Tracking statistics
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/stats [get]
func (h *Handler) getTrackingStats(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getTrackingStats", "user_id": currentUserID(c)})

	stats, err := h.trackingService.GetStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Location timeline
// @Description Locations of one UTC day in ascending time order.
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day, YYYY-MM-DD (default today)"
// @Success 200 {array} models.TimelinePoint
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getTimeline", "user_id": currentUserID(c)})

	date, ok := parseDate(c)
	if !ok {
		return
	}

	timeline, err := h.trackingService.GetLocationTimeline(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// @Summary Distance traveled
// @Description Great-circle distance over the day's timeline, km.
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day, YYYY-MM-DD (default today)"
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/distance [get]
func (h *Handler) getDistance(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getDistance", "user_id": currentUserID(c)})

	date, ok := parseDate(c)
	if !ok {
		return
	}

	km, err := h.trackingService.GetDistanceTraveled(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}
	c.JSON(http.StatusOK, DistanceResponse{Date: date.Format(dateLayout), DistanceKm: km})
}

// @Summary Frequent locations
// @Description Resolved locations clustered by city and neighborhood, most visited first.
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Param days query int false "Look-back window in days" default(30)
// @Param min_visits query int false "Minimum visits per cluster" default(3)
// @Success 200 {array} models.FrequentLocation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/frequent [get]
func (h *Handler) getFrequentLocations(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getFrequentLocations", "user_id": currentUserID(c)})

	frequent, err := h.trackingService.GetFrequentLocations(c.Request.Context(), currentUserID(c), queryInt(c, "days", 30), queryInt(c, "min_visits", 3))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, frequent)
}

// @Summary Get consent
// @Description Consent record of the current user; an empty object when none exists.
// @Tags Consent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ConsentRecord
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /consent [get]
func (h *Handler) getConsent(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getConsent", "user_id": currentUserID(c)})

	record, err := h.consentService.GetConsent(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Update consent
// @Description Partial consent update; omitted flags keep their value.
// @Tags Consent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param consent body ConsentRequest true "Consent flags"
// @Success 200 {object} models.ConsentRecord
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /consent [post]
func (h *Handler) setConsent(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "setConsent", "user_id": currentUserID(c)})

	var input ConsentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	record, err := h.consentService.SetConsent(c.Request.Context(), currentUserID(c), DTOToConsentUpdate(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Create trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip body CreateTripRequest true "Trip"
// @Success 201 {object} models.Trip
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Trip number already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [post]
func (h *Handler) createTrip(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "createTrip", "user_id": currentUserID(c)})

	var input CreateTripRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), DTOToTripModel(input, currentUserID(c)))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// @Summary List trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Trip
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [get]
func (h *Handler) listTrips(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "listTrips", "user_id": currentUserID(c)})

	trips, err := h.tripService.ListTrips(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
