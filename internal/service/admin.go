package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AdminRepository определяет контракт операций над всей базой
type AdminRepository interface {
	DeleteUserCascade(ctx context.Context, userID uuid.UUID) (*models.UserDeletion, error)
	BulkDeleteUsers(ctx context.Context, userIDs []uuid.UUID) (*models.BulkDeleteResult, error)
	CountUsers(ctx context.Context) (*models.UserCounts, error)
	CountTrips(ctx context.Context) (*models.TripCounts, error)
	CountTracking(ctx context.Context) (*models.TrackingTotals, error)
	CountConsents(ctx context.Context) (*models.ConsentCounts, error)
}

// JobPublisher ставит задачи обслуживания в очередь
type JobPublisher interface {
	Publish(ctx context.Context, job models.MaintenanceJob) error
}

// ConsentCache сбрасывает закэшированное согласие пользователя
type ConsentCache interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// AdminService определяет контракт административных операций
type AdminService interface {
	DeleteUserCascade(ctx context.Context, userID uuid.UUID) (*models.UserDeletion, error)
	BulkDelete(ctx context.Context, userIDs []uuid.UUID) (*models.BulkDeleteResult, error)
	GetDatabaseStatistics(ctx context.Context) (*models.DatabaseStatistics, error)
	ScheduleGeocodingRetry(ctx context.Context, userID *uuid.UUID, limit int) (*models.MaintenanceJob, error)
	ScheduleCleanup(ctx context.Context, days int) (*models.MaintenanceJob, error)
}

type adminService struct {
	repo         AdminRepository
	publisher    JobPublisher
	consentCache ConsentCache
	logger       *logrus.Logger
}

func NewAdminService(repo AdminRepository, publisher JobPublisher, consentCache ConsentCache, logger *logrus.Logger) AdminService {
	return &adminService{
		repo:         repo,
		publisher:    publisher,
		consentCache: consentCache,
		logger:       logger,
	}
}

// DeleteUserCascade удаляет пользователя со всеми его данными.
// Для несуществующего пользователя возвращает models.ErrNotFound.
func (s *adminService) DeleteUserCascade(ctx context.Context, userID uuid.UUID) (*models.UserDeletion, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "DeleteUserCascade",
		"user_id": userID,
	})
	log.Info("Attempting to delete user with all data")

	deletion, err := s.repo.DeleteUserCascade(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete user")
		return nil, fmt.Errorf("service: could not delete user: %w", err)
	}
	s.invalidateConsent(ctx, log, userID)

	log.WithFields(logrus.Fields{
		"trips":     deletion.Deleted.Trips,
		"locations": deletion.Deleted.Locations,
		"motions":   deletion.Deleted.Motions,
		"consents":  deletion.Deleted.Consents,
	}).Warn("User deleted with all data")
	return deletion, nil
}

// BulkDelete удаляет пользователей независимо друг от друга. Ошибка по одному
// ID не прерывает обработку остальных.
func (s *adminService) BulkDelete(ctx context.Context, userIDs []uuid.UUID) (*models.BulkDeleteResult, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: no user ids provided", ErrInvalidInput)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "BulkDelete",
		"count":   len(userIDs),
	})
	log.Info("Attempting bulk user deletion")

	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	unique := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	result, err := s.repo.BulkDeleteUsers(ctx, unique)
	if err != nil {
		log.WithError(err).Error("Failed to bulk delete users")
		return nil, fmt.Errorf("service: could not bulk delete users: %w", err)
	}
	for _, d := range result.Deleted {
		s.invalidateConsent(ctx, log, d.UserID)
	}

	log.WithFields(logrus.Fields{
		"deleted": result.DeletedCount,
		"failed":  result.FailedCount,
	}).Warn("Bulk user deletion completed")
	return result, nil
}

// invalidateConsent сбрасывает кэш согласия удаленного пользователя.
// Данные уже удалены, поэтому ошибка только логируется.
func (s *adminService) invalidateConsent(ctx context.Context, log *logrus.Entry, userID uuid.UUID) {
	if err := s.consentCache.Invalidate(ctx, userID); err != nil {
		log.WithError(err).WithField("deleted_user_id", userID).Warn("Failed to invalidate consent cache of deleted user")
	}
}

// GetDatabaseStatistics собирает сводные счетчики параллельными запросами
func (s *adminService) GetDatabaseStatistics(ctx context.Context) (*models.DatabaseStatistics, error) {
	var (
		users    *models.UserCounts
		trips    *models.TripCounts
		tracking *models.TrackingTotals
		consents *models.ConsentCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		trips, err = s.repo.CountTrips(gctx)
		return err
	})
	g.Go(func() (err error) {
		tracking, err = s.repo.CountTracking(gctx)
		return err
	})
	g.Go(func() (err error) {
		consents, err = s.repo.CountConsents(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "admin",
			"method":  "GetDatabaseStatistics",
		}).WithError(err).Error("Failed to collect database statistics")
		return nil, fmt.Errorf("service: could not get database statistics: %w", err)
	}

	averagePerUser := 0.0
	if users.Total > 0 {
		averagePerUser = math.Round(float64(trips.Total)/float64(users.Total)*100) / 100
	}

	return &models.DatabaseStatistics{
		Users: models.UserCountStats{
			Total:            users.Total,
			WithTrips:        users.WithTrips,
			WithConsent:      users.WithConsent,
			WithLocationData: users.WithLocations,
		},
		Trips: models.TripStats{
			Total:          trips.Total,
			ByMode:         trips.ByMode,
			AveragePerUser: averagePerUser,
		},
		Tracking: models.TrackingDataStats{
			TotalLocations:       tracking.Locations,
			TotalMotions:         tracking.Motions,
			ResolvedAddresses:    tracking.Resolved,
			FailedGeocoding:      tracking.Failed,
			GeocodingSuccessRate: ratio(tracking.Resolved, tracking.Locations),
			ActivityBreakdown:    tracking.ActivityBreakdown,
		},
		Consent: models.ConsentStats{
			TotalRecords:         consents.Total,
			GPSEnabled:           consents.GPS,
			MotionEnabled:        consents.Motion,
			NotificationsEnabled: consents.Notifications,
			GPSRate:              ratio(consents.GPS, consents.Total),
			MotionRate:           ratio(consents.Motion, consents.Total),
			NotificationRate:     ratio(consents.Notifications, consents.Total),
		},
		DataQuality: models.DataQualityStats{
			UsersWithoutTrips:   users.Total - users.WithTrips,
			UsersWithoutConsent: users.Total - users.WithConsent,
			GeocodingPending:    tracking.Locations - tracking.Resolved - tracking.Failed,
		},
	}, nil
}

// ScheduleGeocodingRetry ставит в очередь повторное геокодирование
func (s *adminService) ScheduleGeocodingRetry(ctx context.Context, userID *uuid.UUID, limit int) (*models.MaintenanceJob, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	return s.schedule(ctx, models.MaintenanceJob{
		Kind:   models.JobRetryGeocoding,
		UserID: userID,
		Limit:  limit,
	})
}

// ScheduleCleanup ставит в очередь удаление данных старше days дней
func (s *adminService) ScheduleCleanup(ctx context.Context, days int) (*models.MaintenanceJob, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: retention days must be positive", ErrInvalidInput)
	}
	return s.schedule(ctx, models.MaintenanceJob{
		Kind: models.JobCleanup,
		Days: days,
	})
}

func (s *adminService) schedule(ctx context.Context, job models.MaintenanceJob) (*models.MaintenanceJob, error) {
	job.EnqueuedAt = time.Now().UTC()

	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "schedule",
		"kind":    job.Kind,
	})

	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Error("Failed to publish maintenance job")
		return nil, fmt.Errorf("service: could not schedule %s job: %w", job.Kind, err)
	}

	log.Info("Maintenance job scheduled")
	return &job, nil
}
