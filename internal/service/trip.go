package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

const tripNumberAttempts = 3

// TripRepository определяет контракт хранилища поездок
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
}

// TripService определяет контракт работы с поездками опроса
type TripService interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
}

type tripService struct {
	repo   TripRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewTripService(repo TripRepository, logger *logrus.Logger) TripService {
	return &tripService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateTrip сохраняет поездку. Номер генерируется, если клиент его не передал.
func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "CreateTrip",
		"user_id": trip.UserID,
	})

	if strings.TrimSpace(trip.Origin) == "" || strings.TrimSpace(trip.Destination) == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	}
	if trip.EndTime.Before(trip.StartTime) {
		log.Warn("Rejected trip with end time before start time")
		return nil, fmt.Errorf("%w: end time before start time", ErrInvalidInput)
	}

	trip.ID = uuid.New()
	if trip.AccompanyingTravellers == nil {
		trip.AccompanyingTravellers = []string{}
	}
	trip.CreatedAt = s.now()

	generated := trip.TripNumber == ""
	for attempt := 1; ; attempt++ {
		if generated {
			trip.TripNumber = generateTripNumber()
		}
		err := s.repo.CreateTrip(ctx, trip)
		if err == nil {
			break
		}
		// сгенерированный номер мог совпасть с существующим
		if generated && errors.Is(err, models.ErrConflict) && attempt < tripNumberAttempts {
			log.WithField("trip_number", trip.TripNumber).Warn("Trip number collision, regenerating")
			continue
		}
		log.WithError(err).Error("Failed to create trip in repository")
		return nil, fmt.Errorf("service: could not create trip: %w", err)
	}

	log.WithFields(logrus.Fields{
		"trip_id":     trip.ID,
		"trip_number": trip.TripNumber,
	}).Info("Trip created successfully")
	return trip, nil
}

// ListTrips возвращает поездки пользователя, новые первыми
func (s *tripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	trips, err := s.repo.ListTripsByUser(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "trip",
			"method":  "ListTrips",
			"user_id": userID,
		}).WithError(err).Error("Failed to list trips from repository")
		return nil, fmt.Errorf("service: could not list trips: %w", err)
	}
	return trips, nil
}

func generateTripNumber() string {
	return fmt.Sprintf("TRIP-%04d", rand.IntN(10000))
}
