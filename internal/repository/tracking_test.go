package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var locationColumnNames = []string{
	"id", "user_id", "latitude", "longitude", "accuracy", "altitude", "altitude_accuracy", "heading", "speed",
	"full_address", "formatted_address", "street_number", "street_name", "neighborhood", "city", "state",
	"postal_code", "country", "country_code", "address_resolved", "geocoding_failed", "timestamp", "address_updated_at",
}

func locationRow(rows *pgxmock.Rows, id, userID uuid.UUID, city string, resolved bool, ts time.Time) *pgxmock.Rows {
	accuracy := 5.0
	return rows.AddRow(
		id, userID, 9.97, 76.28, &accuracy, nil, nil, nil, nil,
		"", "MG Road, Kochi", "", "MG Road", "", city, "Kerala",
		"682011", "India", "in", resolved, !resolved, ts, nil,
	)
}

func TestTrackingRepository_CreateLocation(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	sample := &models.LocationSample{ID: uuid.New(), UserID: uuid.New(), Latitude: 1, Longitude: 2}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location_samples")).
		WithArgs(append([]any{sample.ID, sample.UserID, 1.0, 2.0}, anyArgs(19)...)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateLocation(context.Background(), sample))
}

func TestTrackingRepository_ListLocationsSince(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	userID := uuid.New()
	since := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	ts := since.Add(time.Hour)

	rows := locationRow(pgxmock.NewRows(locationColumnNames), uuid.New(), userID, "Kochi", true, ts)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp DESC LIMIT $3")).
		WithArgs(userID, since, 100).
		WillReturnRows(rows)

	locations, err := repo.ListLocationsSince(context.Background(), userID, since, 100)

	require.NoError(t, err)
	require.Len(t, locations, 1)
	l := locations[0]
	assert.Equal(t, "Kochi", l.Address.City)
	assert.True(t, l.AddressResolved)
	require.NotNil(t, l.Accuracy)
	assert.Equal(t, 5.0, *l.Accuracy)
	assert.Nil(t, l.Speed)
	assert.Equal(t, ts, l.Timestamp)
}

func TestTrackingRepository_ListFailedGeocoding(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		userID *uuid.UUID
		query  string
		args   []any
	}{
		{
			name:  "all users",
			query: "FROM location_samples WHERE geocoding_failed AND NOT address_resolved ORDER BY timestamp ASC LIMIT 50",
		},
		{
			name:   "single user",
			userID: &userID,
			query:  "WHERE geocoding_failed AND NOT address_resolved AND user_id = $1 ORDER BY timestamp ASC LIMIT 50",
			args:   []any{userID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			repo := NewTrackingRepository(mock)

			expect := mock.ExpectQuery(regexp.QuoteMeta(tt.query))
			if tt.args != nil {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(pgxmock.NewRows(locationColumnNames))

			locations, err := repo.ListFailedGeocoding(context.Background(), tt.userID, 50)

			require.NoError(t, err)
			assert.Empty(t, locations)
		})
	}
}

func TestTrackingRepository_UpdateLocationAddress(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	now := time.Now()
	sample := &models.LocationSample{
		ID:               uuid.New(),
		Address:          models.Address{City: "Kochi", Country: "India"},
		AddressResolved:  true,
		AddressUpdatedAt: &now,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE location_samples SET")).
		WithArgs("", "", "", "", "", "Kochi", "", "", "India", "", true, false, &now, sample.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateLocationAddress(context.Background(), sample))
}

func TestTrackingRepository_UpdateLocationAddress_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(e *pgxmock.ExpectedExec)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing row",
			setup:   func(e *pgxmock.ExpectedExec) { e.WillReturnResult(pgxmock.NewResult("UPDATE", 0)) },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "connection failure",
			setup:   func(e *pgxmock.ExpectedExec) { e.WillReturnError(errors.New("connection reset")) },
			wantMsg: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			repo := NewTrackingRepository(mock)
			sample := &models.LocationSample{ID: uuid.New(), GeocodingFailed: true}

			tt.setup(mock.ExpectExec(regexp.QuoteMeta("UPDATE location_samples SET")).
				WithArgs(append(anyArgs(13), sample.ID)...))

			err := repo.UpdateLocationAddress(context.Background(), sample)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTrackingRepository_GetTrackingCounts(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	userID := uuid.New()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM location_samples WHERE user_id = $1")).
		WithArgs(userID, today).
		WillReturnRows(pgxmock.NewRows([]string{"total", "motions", "today", "resolved", "failed"}).
			AddRow(10, 4, 2, 7, 3))

	counts, err := repo.GetTrackingCounts(context.Background(), userID, today)

	require.NoError(t, err)
	assert.Equal(t, &models.TrackingCounts{
		TotalLocations:    10,
		TotalMotions:      4,
		LocationsToday:    2,
		ResolvedAddresses: 7,
		FailedAddresses:   3,
	}, counts)
}

func TestTrackingRepository_GetActivityBreakdown(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	userID := uuid.New()
	since := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY 1")).
		WithArgs(userID, since).
		WillReturnRows(pgxmock.NewRows([]string{"activity_type", "count"}).
			AddRow("walking", 5).
			AddRow("driving", 2))

	breakdown, err := repo.GetActivityBreakdown(context.Background(), userID, since)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"walking": 5, "driving": 2}, breakdown)
}

func TestTrackingRepository_GetLatestMotion_NotFound(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM motion_samples WHERE user_id = $1 ORDER BY timestamp DESC LIMIT 1")).
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetLatestMotion(context.Background(), userID)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTrackingRepository_DeleteSamplesBefore(t *testing.T) {
	mock := newMockDB(t)
	repo := NewTrackingRepository(mock)
	cutoff := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM motion_samples WHERE timestamp < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM location_samples WHERE timestamp < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 9))
	mock.ExpectCommit()

	locations, motions, err := repo.DeleteSamplesBefore(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(9), locations)
	assert.Equal(t, int64(4), motions)
}
