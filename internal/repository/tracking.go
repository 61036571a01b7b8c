package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
)

const locationColumns = `
	id, user_id, latitude, longitude, accuracy, altitude, altitude_accuracy, heading, speed,
	full_address, formatted_address, street_number, street_name, neighborhood, city, state,
	postal_code, country, country_code, address_resolved, geocoding_failed, timestamp, address_updated_at`

const motionColumns = `
	id, user_id,
	acceleration_x, acceleration_y, acceleration_z,
	acceleration_including_gravity_x, acceleration_including_gravity_y, acceleration_including_gravity_z,
	rotation_rate_alpha, rotation_rate_beta, rotation_rate_gamma,
	orientation_alpha, orientation_beta, orientation_gamma,
	COALESCE(activity_type, ''), COALESCE(confidence, 0), location_id, timestamp`

type TrackingRepository struct {
	db DB
}

func NewTrackingRepository(db DB) service.TrackingRepository {
	return &TrackingRepository{db: db}
}

// CreateLocation сохраняет точку вместе с результатом геокодирования одной строкой
func (r *TrackingRepository) CreateLocation(ctx context.Context, l *models.LocationSample) error {
	query := `
		INSERT INTO location_samples (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.db.Exec(ctx, query,
		l.ID,
		l.UserID,
		l.Latitude,
		l.Longitude,
		l.Accuracy,
		l.Altitude,
		l.AltitudeAccuracy,
		l.Heading,
		l.Speed,
		l.Address.FullAddress,
		l.Address.FormattedAddress,
		l.Address.StreetNumber,
		l.Address.StreetName,
		l.Address.Neighborhood,
		l.Address.City,
		l.Address.State,
		l.Address.PostalCode,
		l.Address.Country,
		l.Address.CountryCode,
		l.AddressResolved,
		l.GeocodingFailed,
		l.Timestamp,
		l.AddressUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create location sample: %w", mapPgError(err))
	}
	return nil
}

// UpdateLocationAddress сохраняет результат повторного геокодирования одной точки.
// Каждый вызов фиксируется отдельно.
func (r *TrackingRepository) UpdateLocationAddress(ctx context.Context, l *models.LocationSample) error {
	query := `
		UPDATE location_samples SET
			full_address = $1,
			formatted_address = $2,
			street_number = $3,
			street_name = $4,
			neighborhood = $5,
			city = $6,
			state = $7,
			postal_code = $8,
			country = $9,
			country_code = $10,
			address_resolved = $11,
			geocoding_failed = $12,
			address_updated_at = $13
		WHERE id = $14;
	`
	tag, err := r.db.Exec(ctx, query,
		l.Address.FullAddress,
		l.Address.FormattedAddress,
		l.Address.StreetNumber,
		l.Address.StreetName,
		l.Address.Neighborhood,
		l.Address.City,
		l.Address.State,
		l.Address.PostalCode,
		l.Address.Country,
		l.Address.CountryCode,
		l.AddressResolved,
		l.GeocodingFailed,
		l.AddressUpdatedAt,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update address of location %s: %w", l.ID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update address of location %s: %w", l.ID, models.ErrNotFound)
	}
	return nil
}

// CreateMotion сохраняет показания движения
func (r *TrackingRepository) CreateMotion(ctx context.Context, m *models.MotionSample) error {
	query := `
		INSERT INTO motion_samples (
			id, user_id,
			acceleration_x, acceleration_y, acceleration_z,
			acceleration_including_gravity_x, acceleration_including_gravity_y, acceleration_including_gravity_z,
			rotation_rate_alpha, rotation_rate_beta, rotation_rate_gamma,
			orientation_alpha, orientation_beta, orientation_gamma,
			activity_type, confidence, location_id, timestamp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, ''), $16, $17, $18);
	`
	rd := m.Reading
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.UserID,
		rd.Acceleration.X, rd.Acceleration.Y, rd.Acceleration.Z,
		rd.AccelerationIncludingGravity.X, rd.AccelerationIncludingGravity.Y, rd.AccelerationIncludingGravity.Z,
		rd.RotationRate.Alpha, rd.RotationRate.Beta, rd.RotationRate.Gamma,
		rd.Orientation.Alpha, rd.Orientation.Beta, rd.Orientation.Gamma,
		m.ActivityType,
		m.Confidence,
		m.LocationID,
		m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create motion sample: %w", mapPgError(err))
	}
	return nil
}

// ListLocationsSince возвращает точки начиная с since, новые первыми
func (r *TrackingRepository) ListLocationsSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*models.LocationSample, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1 AND timestamp >= $2
		ORDER BY timestamp DESC
		LIMIT $3;
	`
	return r.queryLocations(ctx, query, userID, since, limit)
}

// ListLocationsBetween возвращает точки в [from, to) по возрастанию времени
func (r *TrackingRepository) ListLocationsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.LocationSample, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC;
	`
	return r.queryLocations(ctx, query, userID, from, to)
}

// ListResolvedLocationsSince возвращает только геокодированные точки
func (r *TrackingRepository) ListResolvedLocationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.LocationSample, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1 AND address_resolved AND timestamp >= $2
		ORDER BY timestamp ASC;
	`
	return r.queryLocations(ctx, query, userID, since)
}

// ListFailedGeocoding возвращает точки с неудачным геокодированием, старые первыми.
// userID == nil означает всех пользователей.
func (r *TrackingRepository) ListFailedGeocoding(ctx context.Context, userID *uuid.UUID, limit int) ([]*models.LocationSample, error) {
	builder := psql.
		Select(locationColumns).
		From("location_samples").
		Where("geocoding_failed AND NOT address_resolved").
		OrderBy("timestamp ASC").
		Limit(uint64(limit))
	if userID != nil {
		builder = builder.Where("user_id = ?", *userID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build failed geocoding query: %w", err)
	}
	return r.queryLocations(ctx, query, args...)
}

func (r *TrackingRepository) queryLocations(ctx context.Context, query string, args ...any) ([]*models.LocationSample, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list location samples: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.LocationSample, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location samples iteration: %w", err)
	}
	return locations, nil
}

func scanLocation(row rowScanner) (*models.LocationSample, error) {
	l := &models.LocationSample{}
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Latitude,
		&l.Longitude,
		&l.Accuracy,
		&l.Altitude,
		&l.AltitudeAccuracy,
		&l.Heading,
		&l.Speed,
		&l.Address.FullAddress,
		&l.Address.FormattedAddress,
		&l.Address.StreetNumber,
		&l.Address.StreetName,
		&l.Address.Neighborhood,
		&l.Address.City,
		&l.Address.State,
		&l.Address.PostalCode,
		&l.Address.Country,
		&l.Address.CountryCode,
		&l.AddressResolved,
		&l.GeocodingFailed,
		&l.Timestamp,
		&l.AddressUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan location sample: %w", err)
	}
	return l, nil
}

// ListMotionsSince возвращает движения начиная с since, новые первыми
func (r *TrackingRepository) ListMotionsSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*models.MotionSample, error) {
	query := `
		SELECT ` + motionColumns + `
		FROM motion_samples
		WHERE user_id = $1 AND timestamp >= $2
		ORDER BY timestamp DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list motion samples: %w", err)
	}
	defer rows.Close()

	motions := make([]*models.MotionSample, 0)
	for rows.Next() {
		m, err := scanMotion(rows)
		if err != nil {
			return nil, err
		}
		motions = append(motions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error motion samples iteration: %w", err)
	}
	return motions, nil
}

func scanMotion(row rowScanner) (*models.MotionSample, error) {
	m := &models.MotionSample{}
	rd := &m.Reading
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&rd.Acceleration.X, &rd.Acceleration.Y, &rd.Acceleration.Z,
		&rd.AccelerationIncludingGravity.X, &rd.AccelerationIncludingGravity.Y, &rd.AccelerationIncludingGravity.Z,
		&rd.RotationRate.Alpha, &rd.RotationRate.Beta, &rd.RotationRate.Gamma,
		&rd.Orientation.Alpha, &rd.Orientation.Beta, &rd.Orientation.Gamma,
		&m.ActivityType,
		&m.Confidence,
		&m.LocationID,
		&m.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan motion sample: %w", err)
	}
	return m, nil
}

// GetTrackingCounts считает точки и движения пользователя
func (r *TrackingRepository) GetTrackingCounts(ctx context.Context, userID uuid.UUID, todayStart time.Time) (*models.TrackingCounts, error) {
	query := `
		SELECT
			COUNT(*),
			(SELECT COUNT(*) FROM motion_samples WHERE user_id = $1),
			COUNT(*) FILTER (WHERE timestamp >= $2),
			COUNT(*) FILTER (WHERE address_resolved),
			COUNT(*) FILTER (WHERE geocoding_failed)
		FROM location_samples
		WHERE user_id = $1;
	`
	counts := &models.TrackingCounts{}
	err := r.db.QueryRow(ctx, query, userID, todayStart).Scan(
		&counts.TotalLocations,
		&counts.TotalMotions,
		&counts.LocationsToday,
		&counts.ResolvedAddresses,
		&counts.FailedAddresses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking counts: %w", err)
	}
	return counts, nil
}

// GetActivityBreakdown возвращает гистограмму типов активности начиная с since
func (r *TrackingRepository) GetActivityBreakdown(ctx context.Context, userID uuid.UUID, since time.Time) (map[string]int, error) {
	query := `
		SELECT COALESCE(activity_type, 'unknown'), COUNT(*)
		FROM motion_samples
		WHERE user_id = $1 AND timestamp >= $2
		GROUP BY 1;
	`
	return queryHistogram(ctx, r.db, query, userID, since)
}

// GetLatestLocation возвращает последнюю точку или models.ErrNotFound
func (r *TrackingRepository) GetLatestLocation(ctx context.Context, userID uuid.UUID) (*models.LocationSample, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT 1;
	`
	l, err := scanLocation(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("latest location of user %s: %w", userID, models.ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

// GetLatestMotion возвращает последнее движение или models.ErrNotFound
func (r *TrackingRepository) GetLatestMotion(ctx context.Context, userID uuid.UUID) (*models.MotionSample, error) {
	query := `
		SELECT ` + motionColumns + `
		FROM motion_samples
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT 1;
	`
	m, err := scanMotion(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("latest motion of user %s: %w", userID, models.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// DeleteSamplesBefore удаляет точки и движения старше cutoff
func (r *TrackingRepository) DeleteSamplesBefore(ctx context.Context, cutoff time.Time) (int64, int64, error) {
	var locations, motions int64
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM motion_samples WHERE timestamp < $1;`, cutoff)
		if err != nil {
			return fmt.Errorf("failed to delete old motion samples: %w", err)
		}
		motions = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM location_samples WHERE timestamp < $1;`, cutoff)
		if err != nil {
			return fmt.Errorf("failed to delete old location samples: %w", err)
		}
		locations = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return locations, motions, nil
}

func queryHistogram(ctx context.Context, db DB, query string, args ...any) (map[string]int, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query histogram: %w", err)
	}
	defer rows.Close()

	histogram := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		histogram[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error histogram iteration: %w", err)
	}
	return histogram, nil
}
