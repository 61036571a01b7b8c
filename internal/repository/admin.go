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

// порядок удаления: сначала зависимые таблицы, пользователь последним
var userDataTables = []string{"motion_samples", "location_samples", "trips", "consents"}

type AdminRepository struct {
	db DB
}

func NewAdminRepository(db DB) service.AdminRepository {
	return &AdminRepository{db: db}
}

// DeleteUserCascade удаляет пользователя и все его данные в одной транзакции
func (r *AdminRepository) DeleteUserCascade(ctx context.Context, userID uuid.UUID) (*models.UserDeletion, error) {
	var deletion *models.UserDeletion
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		deletion, err = deleteUser(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deletion, nil
}

// BulkDeleteUsers удаляет каждого пользователя под своей точкой сохранения:
// неудача откатывает только его, успешные фиксируются вместе в конце
func (r *AdminRepository) BulkDeleteUsers(ctx context.Context, userIDs []uuid.UUID) (*models.BulkDeleteResult, error) {
	result := &models.BulkDeleteResult{
		Deleted: make([]models.UserDeletion, 0, len(userIDs)),
		Failed:  make([]models.DeletionFailure, 0),
	}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, id := range userIDs {
			if _, err := tx.Exec(ctx, `SAVEPOINT delete_user;`); err != nil {
				return fmt.Errorf("failed to create savepoint: %w", err)
			}

			deletion, err := deleteUser(ctx, tx, id)
			if err != nil {
				if _, rbErr := tx.Exec(ctx, `ROLLBACK TO SAVEPOINT delete_user;`); rbErr != nil {
					return fmt.Errorf("failed to rollback to savepoint: %w", rbErr)
				}
				result.Failed = append(result.Failed, models.DeletionFailure{
					UserID: id,
					Reason: deletionFailureReason(err),
				})
				continue
			}

			if _, err := tx.Exec(ctx, `RELEASE SAVEPOINT delete_user;`); err != nil {
				return fmt.Errorf("failed to release savepoint: %w", err)
			}
			result.Deleted = append(result.Deleted, *deletion)
			result.TotalDeleted.Add(deletion.Deleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.DeletedCount = len(result.Deleted)
	result.FailedCount = len(result.Failed)
	return result, nil
}

func deletionFailureReason(err error) string {
	if errors.Is(err, models.ErrNotFound) {
		return "user not found"
	}
	return err.Error()
}

// deleteUser считает данные пользователя до удаления, затем удаляет их
func deleteUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*models.UserDeletion, error) {
	deletion := &models.UserDeletion{UserID: userID}

	err := tx.QueryRow(ctx, `SELECT email FROM users WHERE id = $1 FOR UPDATE;`, userID).Scan(&deletion.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	countQuery := `
		SELECT
			(SELECT COUNT(*) FROM trips WHERE user_id = $1),
			(SELECT COUNT(*) FROM location_samples WHERE user_id = $1),
			(SELECT COUNT(*) FROM motion_samples WHERE user_id = $1),
			(SELECT COUNT(*) FROM consents WHERE user_id = $1);
	`
	d := &deletion.Deleted
	if err := tx.QueryRow(ctx, countQuery, userID).Scan(&d.Trips, &d.Locations, &d.Motions, &d.Consents); err != nil {
		return nil, fmt.Errorf("failed to count user data: %w", err)
	}

	for _, table := range userDataTables {
		query, args, err := psql.Delete(table).Where("user_id = ?", userID).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build delete from %s: %w", table, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return deletion, nil
}

// CountUsers считает пользователей по наличию данных
func (r *AdminRepository) CountUsers(ctx context.Context) (*models.UserCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(DISTINCT user_id) FROM trips),
			(SELECT COUNT(*) FROM consents),
			(SELECT COUNT(DISTINCT user_id) FROM location_samples);
	`
	counts := &models.UserCounts{}
	err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.WithTrips, &counts.WithConsent, &counts.WithLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return counts, nil
}

// CountTrips считает поездки по способу передвижения
func (r *AdminRepository) CountTrips(ctx context.Context) (*models.TripCounts, error) {
	byMode, err := queryHistogram(ctx, r.db, `
		SELECT mode_of_travel, COUNT(*)
		FROM trips
		GROUP BY mode_of_travel;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}

	counts := &models.TripCounts{ByMode: byMode}
	for _, n := range byMode {
		counts.Total += n
	}
	return counts, nil
}

// CountTracking считает данные трекинга по всей базе
func (r *AdminRepository) CountTracking(ctx context.Context) (*models.TrackingTotals, error) {
	query := `
		SELECT
			COUNT(*),
			(SELECT COUNT(*) FROM motion_samples),
			COUNT(*) FILTER (WHERE address_resolved),
			COUNT(*) FILTER (WHERE geocoding_failed)
		FROM location_samples;
	`
	totals := &models.TrackingTotals{}
	err := r.db.QueryRow(ctx, query).Scan(&totals.Locations, &totals.Motions, &totals.Resolved, &totals.Failed)
	if err != nil {
		return nil, fmt.Errorf("failed to count tracking data: %w", err)
	}

	totals.ActivityBreakdown, err = queryHistogram(ctx, r.db, `
		SELECT COALESCE(activity_type, 'unknown'), COUNT(*)
		FROM motion_samples
		GROUP BY 1;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity types: %w", err)
	}
	return totals, nil
}

// CountConsents считает записи согласий и включенные флаги
func (r *AdminRepository) CountConsents(ctx context.Context) (*models.ConsentCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE gps),
			COUNT(*) FILTER (WHERE motion_activity),
			COUNT(*) FILTER (WHERE notifications)
		FROM consents;
	`
	counts := &models.ConsentCounts{}
	err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.GPS, &counts.Motion, &counts.Notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to count consents: %w", err)
	}
	return counts, nil
}
