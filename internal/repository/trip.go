package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
)

type TripRepository struct {
	db DB
}

func NewTripRepository(db DB) service.TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip сохраняет поездку. Повтор trip_number дает models.ErrConflict.
func (r *TripRepository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, user_id, trip_number, origin, destination, start_time, end_time,
			mode_of_travel, vehicle_type, fuel_type, accompanying_travellers, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.UserID,
		trip.TripNumber,
		trip.Origin,
		trip.Destination,
		trip.StartTime,
		trip.EndTime,
		trip.ModeOfTravel,
		trip.VehicleType,
		trip.FuelType,
		trip.AccompanyingTravellers,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", mapPgError(err))
	}
	return nil
}

// ListTripsByUser возвращает поездки пользователя, новые первыми
func (r *TripRepository) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT
			id,
			user_id,
			trip_number,
			origin,
			destination,
			start_time,
			end_time,
			mode_of_travel,
			COALESCE(vehicle_type, ''),
			COALESCE(fuel_type, ''),
			accompanying_travellers,
			created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY start_time DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*models.Trip, 0)
	for rows.Next() {
		trip := &models.Trip{}
		err := rows.Scan(
			&trip.ID,
			&trip.UserID,
			&trip.TripNumber,
			&trip.Origin,
			&trip.Destination,
			&trip.StartTime,
			&trip.EndTime,
			&trip.ModeOfTravel,
			&trip.VehicleType,
			&trip.FuelType,
			&trip.AccompanyingTravellers,
			&trip.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error trips iteration: %w", err)
	}
	return trips, nil
}
