package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsentService(t *testing.T) (*consentService, *mocks.MockConsentRepository, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockConsentRepository(ctrl)

	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	service := NewConsentService(repoMock, logger)
	return service.(*consentService), repoMock, logs
}

func boolPtr(v bool) *bool { return &v }

func TestHasConsent(t *testing.T) {
	userID := uuid.New()
	record := &models.ConsentRecord{UserID: userID, GPS: true, MotionActivity: false}

	tests := []struct {
		name    string
		record  *models.ConsentRecord
		repoErr error
		kind    models.ConsentKind
		want    bool
		wantErr bool
	}{
		{name: "gps granted", record: record, kind: models.ConsentGPS, want: true},
		{name: "motion not granted", record: record, kind: models.ConsentMotionActivity, want: false},
		{name: "no record denies", repoErr: models.ErrNotFound, kind: models.ConsentGPS, want: false},
		{name: "repository failure", repoErr: errors.New("db down"), kind: models.ConsentGPS, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _ := newTestConsentService(t)
			ctx := context.Background()

			repoMock.EXPECT().GetConsent(ctx, userID).Return(tt.record, tt.repoErr).Times(1)

			got, err := service.HasConsent(ctx, userID, tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetConsent_Success(t *testing.T) {
	service, repoMock, _ := newTestConsentService(t)
	ctx := context.Background()
	userID := uuid.New()
	update := models.ConsentUpdate{GPS: boolPtr(true)}
	expected := &models.ConsentRecord{UserID: userID, GPS: true}

	repoMock.EXPECT().UpsertConsent(ctx, userID, update).Return(expected, nil).Times(1)

	record, err := service.SetConsent(ctx, userID, update)

	require.NoError(t, err)
	assert.Equal(t, expected, record)
}

func TestOverrideConsent_RequiresReason(t *testing.T) {
	service, _, _ := newTestConsentService(t)

	record, err := service.OverrideConsent(context.Background(), uuid.New(), uuid.New(), models.ConsentUpdate{GPS: boolPtr(false)}, "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, record)
}

func TestOverrideConsent_LogsReason(t *testing.T) {
	service, repoMock, logs := newTestConsentService(t)
	ctx := context.Background()
	adminID, userID := uuid.New(), uuid.New()
	update := models.ConsentUpdate{MotionActivity: boolPtr(false)}

	repoMock.EXPECT().
		UpsertConsent(ctx, userID, update).
		Return(&models.ConsentRecord{UserID: userID}, nil).
		Times(1)

	record, err := service.OverrideConsent(ctx, adminID, userID, update, "user request by phone")

	require.NoError(t, err)
	assert.Equal(t, userID, record.UserID)
	assert.Contains(t, logs.String(), "user request by phone")
	assert.Contains(t, logs.String(), `"level":"warning"`)
}

func TestOverrideConsent_UnknownUser(t *testing.T) {
	service, repoMock, _ := newTestConsentService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().
		UpsertConsent(ctx, userID, gomock.Any()).
		Return(nil, models.ErrNotFound).
		Times(1)

	_, err := service.OverrideConsent(ctx, uuid.New(), userID, models.ConsentUpdate{}, "audit")

	assert.ErrorIs(t, err, models.ErrNotFound)
}
