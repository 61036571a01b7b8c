package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ConsentRepository определяет контракт хранилища согласий
type ConsentRepository interface {
	GetConsent(ctx context.Context, userID uuid.UUID) (*models.ConsentRecord, error)
	UpsertConsent(ctx context.Context, userID uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error)
}

// ConsentService - шлюз согласий: без записи о согласии сбор данных запрещен
type ConsentService interface {
	HasConsent(ctx context.Context, userID uuid.UUID, kind models.ConsentKind) (bool, error)
	GetConsent(ctx context.Context, userID uuid.UUID) (*models.ConsentRecord, error)
	SetConsent(ctx context.Context, userID uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error)
	OverrideConsent(ctx context.Context, adminID, userID uuid.UUID, update models.ConsentUpdate, reason string) (*models.ConsentRecord, error)
}

type consentService struct {
	repo   ConsentRepository
	logger *logrus.Logger
}

func NewConsentService(repo ConsentRepository, logger *logrus.Logger) ConsentService {
	return &consentService{
		repo:   repo,
		logger: logger,
	}
}

// HasConsent возвращает false, если записи о согласии нет
func (s *consentService) HasConsent(ctx context.Context, userID uuid.UUID, kind models.ConsentKind) (bool, error) {
	record, err := s.repo.GetConsent(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		s.logger.WithFields(logrus.Fields{
			"service": "consent",
			"method":  "HasConsent",
			"user_id": userID,
			"kind":    kind,
		}).WithError(err).Error("Failed to load consent record")
		return false, fmt.Errorf("service: could not check consent: %w", err)
	}
	return record.Allows(kind), nil
}

// GetConsent возвращает запись о согласии пользователя
func (s *consentService) GetConsent(ctx context.Context, userID uuid.UUID) (*models.ConsentRecord, error) {
	record, err := s.repo.GetConsent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get consent: %w", err)
	}
	return record, nil
}

// SetConsent частично обновляет согласие, создавая запись при первом обращении
func (s *consentService) SetConsent(ctx context.Context, userID uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "consent",
		"method":  "SetConsent",
		"user_id": userID,
	})
	log.Info("Updating consent")

	record, err := s.repo.UpsertConsent(ctx, userID, update)
	if err != nil {
		log.WithError(err).Error("Failed to upsert consent in repository")
		return nil, fmt.Errorf("service: could not update consent: %w", err)
	}

	log.WithFields(logrus.Fields{
		"gps":             record.GPS,
		"notifications":   record.Notifications,
		"motion_activity": record.MotionActivity,
	}).Info("Consent updated successfully")
	return record, nil
}

// OverrideConsent - изменение согласия администратором; причина обязательна и попадает в журнал
func (s *consentService) OverrideConsent(ctx context.Context, adminID, userID uuid.UUID, update models.ConsentUpdate, reason string) (*models.ConsentRecord, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required for consent override", ErrInvalidInput)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "consent",
		"method":   "OverrideConsent",
		"admin_id": adminID,
		"user_id":  userID,
		"reason":   reason,
	})
	log.Warn("Administrator is overriding user consent")

	record, err := s.repo.UpsertConsent(ctx, userID, update)
	if err != nil {
		log.WithError(err).Error("Failed to override consent in repository")
		return nil, fmt.Errorf("service: could not override consent: %w", err)
	}

	log.Info("Consent overridden successfully")
	return record, nil
}
