package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
)

type ConsentRepository struct {
	db DB
}

func NewConsentRepository(db DB) service.ConsentRepository {
	return &ConsentRepository{db: db}
}

// GetConsent возвращает запись о согласии или models.ErrNotFound
func (r *ConsentRepository) GetConsent(ctx context.Context, userID uuid.UUID) (*models.ConsentRecord, error) {
	query := `
		SELECT user_id, gps, notifications, motion_activity, updated_at
		FROM consents
		WHERE user_id = $1;
	`
	record := &models.ConsentRecord{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&record.UserID,
		&record.GPS,
		&record.Notifications,
		&record.MotionActivity,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("consent for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consent: %w", err)
	}
	return record, nil
}

// UpsertConsent создает запись при первом обращении; nil поля не меняются
func (r *ConsentRepository) UpsertConsent(ctx context.Context, userID uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error) {
	query := `
		INSERT INTO consents (user_id, gps, notifications, motion_activity, updated_at)
		VALUES ($1, COALESCE($2, FALSE), COALESCE($3, FALSE), COALESCE($4, FALSE), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			gps = COALESCE($2, consents.gps),
			notifications = COALESCE($3, consents.notifications),
			motion_activity = COALESCE($4, consents.motion_activity),
			updated_at = NOW()
		RETURNING user_id, gps, notifications, motion_activity, updated_at;
	`
	record := &models.ConsentRecord{}
	err := r.db.QueryRow(ctx, query,
		userID,
		update.GPS,
		update.Notifications,
		update.MotionActivity,
	).Scan(
		&record.UserID,
		&record.GPS,
		&record.Notifications,
		&record.MotionActivity,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert consent: %w", mapPgError(err))
	}
	return record, nil
}
