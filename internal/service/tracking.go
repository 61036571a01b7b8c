package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/activity"
	"github.com/shenikar/travel_tracking_system/internal/geocoding"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryHours   = 24
	defaultHistoryLimit   = 100
	maxHistoryLimit       = 1000
	defaultFrequentDays   = 30
	defaultMinVisits      = 3
	defaultRetryLimit     = 100
	activityBreakdownDays = 7
)

// TrackingRepository определяет контракт хранилища точек и движений
type TrackingRepository interface {
	CreateLocation(ctx context.Context, sample *models.LocationSample) error
	UpdateLocationAddress(ctx context.Context, sample *models.LocationSample) error
	CreateMotion(ctx context.Context, sample *models.MotionSample) error
	ListLocationsSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*models.LocationSample, error)
	ListMotionsSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*models.MotionSample, error)
	ListLocationsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.LocationSample, error)
	ListResolvedLocationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.LocationSample, error)
	ListFailedGeocoding(ctx context.Context, userID *uuid.UUID, limit int) ([]*models.LocationSample, error)
	GetTrackingCounts(ctx context.Context, userID uuid.UUID, todayStart time.Time) (*models.TrackingCounts, error)
	GetActivityBreakdown(ctx context.Context, userID uuid.UUID, since time.Time) (map[string]int, error)
	GetLatestLocation(ctx context.Context, userID uuid.UUID) (*models.LocationSample, error)
	GetLatestMotion(ctx context.Context, userID uuid.UUID) (*models.MotionSample, error)
	DeleteSamplesBefore(ctx context.Context, cutoff time.Time) (locations int64, motions int64, err error)
}

// Geocoder - обратное геокодирование координат в адрес
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error)
	BulkReverseGeocode(ctx context.Context, coords []geocoding.Coordinate) []geocoding.BulkResult
}

// TrackingService определяет контракт приема и анализа данных трекинга
type TrackingService interface {
	SaveLocation(ctx context.Context, userID uuid.UUID, reading models.LocationReading, resolveAddress bool) (*models.LocationSample, error)
	SaveMotion(ctx context.Context, userID uuid.UUID, reading models.MotionReading, activityType string, confidence float64, locationID *uuid.UUID) (*models.MotionSample, error)
	ProcessBatch(ctx context.Context, userID uuid.UUID, batch models.BatchInput) (*models.BatchResult, error)
	GetHistory(ctx context.Context, userID uuid.UUID, hours, limit int) (*models.History, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
	GetLocationTimeline(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.TimelinePoint, error)
	GetDistanceTraveled(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error)
	GetFrequentLocations(ctx context.Context, userID uuid.UUID, days, minVisits int) ([]models.FrequentLocation, error)
	RetryFailedGeocoding(ctx context.Context, userID *uuid.UUID, limit int) (*models.RetryResult, error)
	CleanupOldData(ctx context.Context, days int) (*models.CleanupResult, error)
}

type trackingService struct {
	repo     TrackingRepository
	consent  ConsentService
	geocoder Geocoder
	logger   *logrus.Logger
	now      func() time.Time
}

func NewTrackingService(repo TrackingRepository, consent ConsentService, geocoder Geocoder, logger *logrus.Logger) TrackingService {
	return &trackingService{
		repo:     repo,
		consent:  consent,
		geocoder: geocoder,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SaveLocation сохраняет точку. Согласие на GPS проверяет вызывающий.
// Неудача геокодирования не прерывает сохранение, а помечает точку geocoding_failed.
func (s *trackingService) SaveLocation(ctx context.Context, userID uuid.UUID, reading models.LocationReading, resolveAddress bool) (*models.LocationSample, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "SaveLocation",
		"user_id": userID,
	})

	if reading.Latitude < -90 || reading.Latitude > 90 || reading.Longitude < -180 || reading.Longitude > 180 {
		log.Warn("Rejected location with out-of-range coordinates")
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	sample := &models.LocationSample{
		ID:               uuid.New(),
		UserID:           userID,
		Latitude:         reading.Latitude,
		Longitude:        reading.Longitude,
		Accuracy:         reading.Accuracy,
		Altitude:         reading.Altitude,
		AltitudeAccuracy: reading.AltitudeAccuracy,
		Heading:          reading.Heading,
		Speed:            reading.Speed,
		Timestamp:        s.now(),
	}

	if resolveAddress {
		s.resolveAddress(ctx, sample)
	}

	if err := s.repo.CreateLocation(ctx, sample); err != nil {
		log.WithError(err).Error("Failed to save location in repository")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	samplesTotal.WithLabelValues("location", geocodingStatus(sample)).Inc()
	log.WithFields(logrus.Fields{
		"location_id":      sample.ID,
		"address_resolved": sample.AddressResolved,
	}).Info("Location saved successfully")
	return sample, nil
}

func (s *trackingService) resolveAddress(ctx context.Context, sample *models.LocationSample) {
	addr, err := s.geocoder.ReverseGeocode(ctx, sample.Latitude, sample.Longitude)
	if err != nil || addr == nil {
		sample.MarkGeocodingFailed()
		s.logger.WithFields(logrus.Fields{
			"service":     "tracking",
			"location_id": sample.ID,
		}).WithError(err).Warn("Failed to resolve address")
		return
	}
	sample.ApplyAddress(addr, s.now())
}

// SaveMotion сохраняет показания движения с уже вычисленной классификацией
func (s *trackingService) SaveMotion(ctx context.Context, userID uuid.UUID, reading models.MotionReading, activityType string, confidence float64, locationID *uuid.UUID) (*models.MotionSample, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "SaveMotion",
		"user_id": userID,
	})

	if confidence < 0 || confidence > 1 || math.IsNaN(confidence) {
		log.WithField("confidence", confidence).Warn("Rejected motion with invalid confidence")
		return nil, fmt.Errorf("%w: confidence must be within [0, 1]", ErrInvalidInput)
	}

	sample := &models.MotionSample{
		ID:           uuid.New(),
		UserID:       userID,
		Reading:      reading,
		ActivityType: activityType,
		Confidence:   confidence,
		LocationID:   locationID,
		Timestamp:    s.now(),
	}

	if err := s.repo.CreateMotion(ctx, sample); err != nil {
		log.WithError(err).Error("Failed to save motion in repository")
		return nil, fmt.Errorf("service: could not save motion: %w", err)
	}

	samplesTotal.WithLabelValues("motion", activityType).Inc()
	log.WithFields(logrus.Fields{
		"motion_id":     sample.ID,
		"activity_type": activityType,
		"confidence":    confidence,
	}).Info("Motion saved successfully")
	return sample, nil
}

// ProcessBatch сохраняет сначала точку, затем движение. Каждая часть проверяется
// на согласие и фиксируется независимо: пакет может быть сохранен частично.
func (s *trackingService) ProcessBatch(ctx context.Context, userID uuid.UUID, batch models.BatchInput) (*models.BatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "ProcessBatch",
		"user_id": userID,
	})
	log.Info("Processing tracking batch")

	result := &models.BatchResult{}
	var saved *models.LocationSample

	if batch.Location != nil {
		allowed, err := s.consent.HasConsent(ctx, userID, models.ConsentGPS)
		if err != nil {
			return nil, fmt.Errorf("service: could not process batch: %w", err)
		}
		if allowed {
			saved, err = s.SaveLocation(ctx, userID, *batch.Location, true)
			if err != nil {
				return nil, fmt.Errorf("service: could not process batch: %w", err)
			}
			result.Location = &models.BatchLocationResult{
				ID:      saved.ID,
				Address: saved.SimpleAddress(),
				Sample:  saved,
			}
		} else {
			log.Info("GPS consent not granted, skipping location")
		}
	}

	if batch.Motion != nil {
		motion, err := s.processBatchMotion(ctx, userID, batch, saved)
		if err != nil {
			if result.Location == nil {
				return nil, fmt.Errorf("service: could not process batch: %w", err)
			}
			log.WithError(err).Warn("Batch partially saved: motion failed after location")
			result.Errors = append(result.Errors, fmt.Sprintf("motion: %v", err))
		}
		result.Motion = motion
	}

	log.WithFields(logrus.Fields{
		"location_saved": result.Location != nil,
		"motion_saved":   result.Motion != nil,
	}).Info("Tracking batch processed")
	return result, nil
}

func (s *trackingService) processBatchMotion(ctx context.Context, userID uuid.UUID, batch models.BatchInput, saved *models.LocationSample) (*models.BatchMotionResult, error) {
	allowed, err := s.consent.HasConsent(ctx, userID, models.ConsentMotionActivity)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, nil
	}

	// контекстом служит только точка, сохраненная в этом же пакете
	var locationCtx *models.LocationReading
	var locationID *uuid.UUID
	if saved != nil {
		locationCtx = batch.Location
		locationID = &saved.ID
	}

	activityType, confidence := activity.Classify(batch.Motion, locationCtx)
	motion, err := s.SaveMotion(ctx, userID, *batch.Motion, string(activityType), confidence, locationID)
	if err != nil {
		return nil, err
	}

	return &models.BatchMotionResult{
		ID:           motion.ID,
		ActivityType: motion.ActivityType,
		Confidence:   motion.Confidence,
		Sample:       motion,
	}, nil
}

// GetHistory возвращает данные за последние hours часов, новые первыми
func (s *trackingService) GetHistory(ctx context.Context, userID uuid.UUID, hours, limit int) (*models.History, error) {
	if hours <= 0 {
		hours = defaultHistoryHours
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "GetHistory",
		"user_id": userID,
		"hours":   hours,
		"limit":   limit,
	})

	since := s.now().Add(-time.Duration(hours) * time.Hour)

	locations, err := s.repo.ListLocationsSince(ctx, userID, since, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not get history: %w", err)
	}

	motions, err := s.repo.ListMotionsSince(ctx, userID, since, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list motions from repository")
		return nil, fmt.Errorf("service: could not get history: %w", err)
	}

	withAddress := 0
	for _, l := range locations {
		if l.AddressResolved {
			withAddress++
		}
	}

	return &models.History{
		Locations: locations,
		Motions:   motions,
		Summary: models.HistorySummary{
			TotalLocations:       len(locations),
			TotalMotions:         len(motions),
			LocationsWithAddress: withAddress,
			TimeRangeHours:       hours,
		},
	}, nil
}

// GetStats собирает статистику трекинга пользователя
func (s *trackingService) GetStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "GetStats",
		"user_id": userID,
	})

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts, err := s.repo.GetTrackingCounts(ctx, userID, todayStart)
	if err != nil {
		log.WithError(err).Error("Failed to get tracking counts")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	breakdown, err := s.repo.GetActivityBreakdown(ctx, userID, now.AddDate(0, 0, -activityBreakdownDays))
	if err != nil {
		log.WithError(err).Error("Failed to get activity breakdown")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	stats := &models.UserStats{
		Overall: models.OverallStats{
			TotalLocations: counts.TotalLocations,
			TotalMotions:   counts.TotalMotions,
			LocationsToday: counts.LocationsToday,
		},
		Geocoding: models.GeocodingStats{
			ResolvedAddresses: counts.ResolvedAddresses,
			FailedAddresses:   counts.FailedAddresses,
			ResolutionRate:    ratio(counts.ResolvedAddresses, counts.TotalLocations),
		},
		ActivityBreakdown: breakdown,
	}

	latestLocation, err := s.repo.GetLatestLocation(ctx, userID)
	switch {
	case err == nil:
		stats.LatestActivity.LastLocation = &models.LocationSnapshot{
			Timestamp: latestLocation.Timestamp,
			Address:   latestLocation.SimpleAddress(),
		}
	case !errors.Is(err, models.ErrNotFound):
		log.WithError(err).Error("Failed to get latest location")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	latestMotion, err := s.repo.GetLatestMotion(ctx, userID)
	switch {
	case err == nil:
		stats.LatestActivity.LastMotion = &models.MotionSnapshot{
			Timestamp:    latestMotion.Timestamp,
			ActivityType: latestMotion.ActivityType,
			Confidence:   latestMotion.Confidence,
		}
	case !errors.Is(err, models.ErrNotFound):
		log.WithError(err).Error("Failed to get latest motion")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	return stats, nil
}

// GetLocationTimeline возвращает точки за сутки (UTC) в порядке возрастания времени
func (s *trackingService) GetLocationTimeline(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.TimelinePoint, error) {
	if date.IsZero() {
		date = s.now()
	}
	date = date.UTC()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	locations, err := s.repo.ListLocationsBetween(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "tracking",
			"method":  "GetLocationTimeline",
			"user_id": userID,
		}).WithError(err).Error("Failed to list locations for timeline")
		return nil, fmt.Errorf("service: could not get timeline: %w", err)
	}

	timeline := make([]models.TimelinePoint, 0, len(locations))
	for _, l := range locations {
		timeline = append(timeline, models.TimelinePoint{
			Timestamp: l.Timestamp,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Address:   l.SimpleAddress(),
			Accuracy:  l.Accuracy,
		})
	}
	return timeline, nil
}

// GetDistanceTraveled суммирует расстояния между соседними точками дня, км
func (s *trackingService) GetDistanceTraveled(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error) {
	timeline, err := s.GetLocationTimeline(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	if len(timeline) < 2 {
		return 0, nil
	}

	total := 0.0
	for i := 1; i < len(timeline); i++ {
		prev, cur := timeline[i-1], timeline[i]
		total += geo.HaversineKm(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}
	return math.Round(total*100) / 100, nil
}

type locationCluster struct {
	key          string
	visits       int
	addressCount map[string]int
	addressOrder []string
	sumLat       float64
	sumLon       float64
	firstVisit   time.Time
	lastVisit    time.Time
}

// GetFrequentLocations группирует геокодированные точки по (город, район или регион).
// Кластеризация по адресу, а не по расстоянию.
func (s *trackingService) GetFrequentLocations(ctx context.Context, userID uuid.UUID, days, minVisits int) ([]models.FrequentLocation, error) {
	if days <= 0 {
		days = defaultFrequentDays
	}
	if minVisits <= 0 {
		minVisits = defaultMinVisits
	}

	locations, err := s.repo.ListResolvedLocationsSince(ctx, userID, s.now().AddDate(0, 0, -days))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "tracking",
			"method":  "GetFrequentLocations",
			"user_id": userID,
		}).WithError(err).Error("Failed to list resolved locations")
		return nil, fmt.Errorf("service: could not get frequent locations: %w", err)
	}

	clusters := make(map[string]*locationCluster)
	var order []*locationCluster

	for _, l := range locations {
		key := clusterKey(l.Address)
		c, ok := clusters[key]
		if !ok {
			c = &locationCluster{
				key:          key,
				addressCount: make(map[string]int),
				firstVisit:   l.Timestamp,
				lastVisit:    l.Timestamp,
			}
			clusters[key] = c
			order = append(order, c)
		}

		c.visits++
		c.sumLat += l.Latitude
		c.sumLon += l.Longitude

		addr := l.Address.FormattedAddress
		if addr == "" {
			addr = l.Address.FullAddress
		}
		if _, seen := c.addressCount[addr]; !seen {
			c.addressOrder = append(c.addressOrder, addr)
		}
		c.addressCount[addr]++

		if l.Timestamp.Before(c.firstVisit) {
			c.firstVisit = l.Timestamp
		}
		if l.Timestamp.After(c.lastVisit) {
			c.lastVisit = l.Timestamp
		}
	}

	frequent := make([]models.FrequentLocation, 0)
	for _, c := range order {
		if c.visits < minVisits {
			continue
		}
		frequent = append(frequent, models.FrequentLocation{
			Location:   c.key,
			Address:    c.mostCommonAddress(),
			Visits:     c.visits,
			Latitude:   c.sumLat / float64(c.visits),
			Longitude:  c.sumLon / float64(c.visits),
			FirstVisit: c.firstVisit,
			LastVisit:  c.lastVisit,
		})
	}

	sort.SliceStable(frequent, func(i, j int) bool {
		return frequent[i].Visits > frequent[j].Visits
	})
	return frequent, nil
}

func clusterKey(a models.Address) string {
	city := a.City
	if city == "" {
		city = "Unknown"
	}
	area := a.Neighborhood
	if area == "" {
		area = a.State
	}
	if area == "" {
		area = "Unknown"
	}
	return city + ", " + area
}

// mostCommonAddress при равенстве выбирает адрес, встреченный первым
func (c *locationCluster) mostCommonAddress() string {
	best, bestCount := "", 0
	for _, addr := range c.addressOrder {
		if n := c.addressCount[addr]; n > bestCount {
			best, bestCount = addr, n
		}
	}
	return best
}

// RetryFailedGeocoding повторно геокодирует точки с geocoding_failed.
// Вызывается вне приема данных (админ или фоновый воркер).
func (s *trackingService) RetryFailedGeocoding(ctx context.Context, userID *uuid.UUID, limit int) (*models.RetryResult, error) {
	if limit <= 0 {
		limit = defaultRetryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "RetryFailedGeocoding",
		"limit":   limit,
	})
	if userID != nil {
		log = log.WithField("user_id", *userID)
	}

	failed, err := s.repo.ListFailedGeocoding(ctx, userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list samples with failed geocoding")
		return nil, fmt.Errorf("service: could not retry geocoding: %w", err)
	}

	result := &models.RetryResult{Processed: len(failed)}
	if len(failed) == 0 {
		return result, nil
	}

	coords := make([]geocoding.Coordinate, len(failed))
	for i, l := range failed {
		l.GeocodingFailed = false
		coords[i] = geocoding.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
	}

	for i, r := range s.geocoder.BulkReverseGeocode(ctx, coords) {
		l := failed[i]
		resolved := r.Err == nil && r.Address != nil
		if resolved {
			l.ApplyAddress(r.Address, s.now())
		} else {
			l.MarkGeocodingFailed()
		}

		// сбой записи одной точки не откатывает уже сохраненные
		if err := s.repo.UpdateLocationAddress(ctx, l); err != nil {
			log.WithError(err).WithField("location_id", l.ID).Warn("Failed to save retried address")
			result.StillFailed++
			continue
		}
		if resolved {
			result.Successful++
		} else {
			result.StillFailed++
		}
	}

	log.WithFields(logrus.Fields{
		"processed":    result.Processed,
		"successful":   result.Successful,
		"still_failed": result.StillFailed,
	}).Info("Geocoding retry completed")
	return result, nil
}

// CleanupOldData безвозвратно удаляет данные старше days дней
func (s *trackingService) CleanupOldData(ctx context.Context, days int) (*models.CleanupResult, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: retention days must be positive", ErrInvalidInput)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "CleanupOldData",
		"days":    days,
	})

	cutoff := s.now().AddDate(0, 0, -days)
	locations, motions, err := s.repo.DeleteSamplesBefore(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to delete old samples")
		return nil, fmt.Errorf("service: could not cleanup old data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"deleted_locations": locations,
		"deleted_motions":   motions,
	}).Info("Cleanup completed")
	return &models.CleanupResult{
		DeletedLocations: locations,
		DeletedMotions:   motions,
		CutoffDate:       cutoff,
	}, nil
}

func geocodingStatus(l *models.LocationSample) string {
	switch {
	case l.AddressResolved:
		return "resolved"
	case l.GeocodingFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// ratio возвращает part/total или 0 при пустом total
func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
