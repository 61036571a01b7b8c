package service

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTripService(t *testing.T) (*tripService, *mocks.MockTripRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTripRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewTripService(repoMock, logger)
	return service.(*tripService), repoMock
}

func newTrip(userID uuid.UUID) *models.Trip {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return &models.Trip{
		UserID:       userID,
		Origin:       "Kochi",
		Destination:  "Thrissur",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		ModeOfTravel: "bus",
	}
}

func TestCreateTrip_GeneratesNumber(t *testing.T) {
	service, repoMock := newTestTripService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateTrip(ctx, gomock.Any()).Return(nil).Times(1)

	trip, err := service.CreateTrip(ctx, newTrip(uuid.New()))

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TRIP-\d{4}$`), trip.TripNumber)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.NotNil(t, trip.AccompanyingTravellers)
}

func TestCreateTrip_KeepsProvidedNumber(t *testing.T) {
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	trip := newTrip(uuid.New())
	trip.TripNumber = "TRIP-0042"

	repoMock.EXPECT().CreateTrip(ctx, trip).Return(nil).Times(1)

	created, err := service.CreateTrip(ctx, trip)

	require.NoError(t, err)
	assert.Equal(t, "TRIP-0042", created.TripNumber)
}

func TestCreateTrip_RegeneratesOnCollision(t *testing.T) {
	service, repoMock := newTestTripService(t)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().CreateTrip(ctx, gomock.Any()).Return(models.ErrConflict),
		repoMock.EXPECT().CreateTrip(ctx, gomock.Any()).Return(nil),
	)

	_, err := service.CreateTrip(ctx, newTrip(uuid.New()))

	require.NoError(t, err)
}

func TestCreateTrip_ProvidedNumberConflict(t *testing.T) {
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	trip := newTrip(uuid.New())
	trip.TripNumber = "TRIP-0001"

	repoMock.EXPECT().CreateTrip(ctx, trip).Return(models.ErrConflict).Times(1)

	_, err := service.CreateTrip(ctx, trip)

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestCreateTrip_Validation(t *testing.T) {
	service, _ := newTestTripService(t)

	trip := newTrip(uuid.New())
	trip.EndTime = trip.StartTime.Add(-time.Minute)
	_, err := service.CreateTrip(context.Background(), trip)
	assert.ErrorIs(t, err, ErrInvalidInput)

	trip = newTrip(uuid.New())
	trip.Destination = " "
	_, err = service.CreateTrip(context.Background(), trip)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListTrips(t *testing.T) {
	service, repoMock := newTestTripService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().ListTripsByUser(ctx, userID).Return([]*models.Trip{newTrip(userID)}, nil).Times(1)
	trips, err := service.ListTrips(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	repoMock.EXPECT().ListTripsByUser(ctx, userID).Return(nil, errors.New("db down")).Times(1)
	_, err = service.ListTrips(ctx, userID)
	assert.Error(t, err)
}
