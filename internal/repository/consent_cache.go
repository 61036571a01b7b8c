package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

const consentCacheTTL = 5 * time.Minute

// Cache - команды Redis, используемые кэшем согласий. Реализуется *redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CachedConsentRepository кэширует записи о согласии в Redis.
// Записи лежат под поколением пользователя: каждая запись согласия и удаление
// пользователя увеличивают поколение, и все ранее закэшированные копии,
// включая положенные конкурентными читателями, становятся недостижимыми.
type CachedConsentRepository struct {
	next   service.ConsentRepository
	cache  Cache
	logger *logrus.Logger
}

var _ service.ConsentRepository = (*CachedConsentRepository)(nil)
var _ service.ConsentCache = (*CachedConsentRepository)(nil)

func NewCachedConsentRepository(next service.ConsentRepository, cache Cache, logger *logrus.Logger) *CachedConsentRepository {
	return &CachedConsentRepository{next: next, cache: cache, logger: logger}
}

func consentGenerationKey(userID uuid.UUID) string {
	return fmt.Sprintf("consent:gen:%s", userID.String())
}

func consentCacheKey(userID uuid.UUID, generation int64) string {
	return fmt.Sprintf("consent:%s:%d", userID.String(), generation)
}

func (r *CachedConsentRepository) GetConsent(ctx context.Context, userID uuid.UUID) (*models.ConsentRecord, error) {
	log := r.logger.WithFields(logrus.Fields{"repository": "CachedConsentRepository", "user_id": userID})

	// поколение читается до базы: если запись изменится во время чтения,
	// копия ляжет под устаревшее поколение
	generation, err := r.generation(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Consent cache unavailable, reading from database")
		return r.next.GetConsent(ctx, userID)
	}

	record, err := r.getFromCache(ctx, userID, generation)
	if err != nil {
		log.WithError(err).Warn("Consent cache read failed, falling back to database")
	}
	if record != nil {
		return record, nil
	}

	record, err = r.next.GetConsent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := r.setCache(ctx, record, generation); err != nil {
		log.WithError(err).Warn("Failed to cache consent")
	}
	return record, nil
}

// UpsertConsent сдвигает поколение до и после записи. Без первого сдвига
// запись не выполняется: отзыв согласия не должен маскироваться кэшем.
func (r *CachedConsentRepository) UpsertConsent(ctx context.Context, userID uuid.UUID, update models.ConsentUpdate) (*models.ConsentRecord, error) {
	if err := r.Invalidate(ctx, userID); err != nil {
		return nil, err
	}

	record, err := r.next.UpsertConsent(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	// читатели между первым сдвигом и коммитом могли закэшировать старую запись
	if err := r.Invalidate(ctx, userID); err != nil {
		r.logger.WithError(err).WithField("user_id", userID).Error("Failed to invalidate consent cache after write")
	}
	return record, nil
}

// Invalidate делает недостижимыми все закэшированные копии согласия пользователя
func (r *CachedConsentRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := r.cache.Incr(ctx, consentGenerationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate consent cache: %w", err)
	}
	return nil
}

// generation возвращает текущее поколение; отсутствие ключа означает 0
func (r *CachedConsentRepository) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	val, err := r.cache.Get(ctx, consentGenerationKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get consent cache generation: %w", err)
	}
	generation, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid consent cache generation %q: %w", val, err)
	}
	return generation, nil
}

// getFromCache возвращает nil, nil при промахе
func (r *CachedConsentRepository) getFromCache(ctx context.Context, userID uuid.UUID, generation int64) (*models.ConsentRecord, error) {
	val, err := r.cache.Get(ctx, consentCacheKey(userID, generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consent from cache: %w", err)
	}

	record := &models.ConsentRecord{}
	if err := json.Unmarshal(val, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal consent from cache: %w", err)
	}
	return record, nil
}

func (r *CachedConsentRepository) setCache(ctx context.Context, record *models.ConsentRecord, generation int64) error {
	val, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal consent for cache: %w", err)
	}
	if err := r.cache.Set(ctx, consentCacheKey(record.UserID, generation), val, consentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set consent in cache: %w", err)
	}
	return nil
}
