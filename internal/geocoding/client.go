// Package geocoding преобразует GPS координаты в адреса через внешнего
// провайдера с кэшем координат и ограничением частоты запросов.
package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidCoordinates = errors.New("geocoding: coordinates out of range")
	ErrUnknownProvider    = errors.New("geocoding: unknown provider")
	ErrMissingAPIKey      = errors.New("geocoding: api key required")
	ErrNoResult           = errors.New("geocoding: no address for coordinates")
	ErrUpstream           = errors.New("geocoding: provider request failed")
)

// Config - настройки клиента геокодирования
type Config struct {
	Provider     string
	GoogleAPIKey string
	MapboxAPIKey string
	UserAgent    string
	Email        string
	Timeout      time.Duration
	// MinInterval - минимальная пауза между запросами к бесплатному провайдеру
	MinInterval time.Duration
	CacheSize   int
	CacheEvict  int
	// BaseURL переопределяет адрес провайдера
	BaseURL string
}

// Coordinate - пара широта/долгота
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BulkResult - результат для одной координаты из пакета
type BulkResult struct {
	Coordinate
	Address *models.Address `json:"address"`
	Err     error           `json:"-"`
}

// Client - один экземпляр на процесс; владеет кэшем и лимитером
type Client struct {
	provider    Provider
	providerErr error
	httpClient  *http.Client
	cache       *Cache
	limiter     *rate.Limiter
	logger      *logrus.Logger
}

func NewClient(cfg Config, logger *logrus.Logger) *Client {
	provider, err := newProvider(cfg)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	return &Client{
		provider:    provider,
		providerErr: err,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       NewCache(cfg.CacheSize, cfg.CacheEvict),
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger,
	}
}

// Err возвращает ошибку конфигурации провайдера, если она есть
func (c *Client) Err() error {
	return c.providerErr
}

// ProviderName возвращает имя настроенного провайдера
func (c *Client) ProviderName() string {
	if c.provider == nil {
		return "unconfigured"
	}
	return c.provider.Name()
}

// ReverseGeocode возвращает адрес для координат. Повторный запрос тех же
// (округленных) координат обслуживается из кэша без обращения к сети.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocoding",
		"latitude":  lat,
		"longitude": lon,
	})

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		log.Warn("Invalid coordinates")
		return nil, ErrInvalidCoordinates
	}

	if c.providerErr != nil {
		log.WithError(c.providerErr).Error("Geocoding provider is misconfigured")
		return nil, c.providerErr
	}

	key := cacheKey(lat, lon)
	if cached, ok := c.cache.Get(key); ok {
		cacheHits.Inc()
		log.WithField("cache_key", key).Debug("Using cached address")
		return cached, nil
	}

	if c.provider.RateLimited() {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("geocoding: rate limiter wait: %w", err)
		}
	}

	addr, err := c.provider.Reverse(ctx, c.httpClient, lat, lon)
	if err != nil {
		requestsTotal.WithLabelValues(c.provider.Name(), outcome(err)).Inc()
		log.WithError(err).Warn("Reverse geocoding failed")
		return nil, err
	}
	requestsTotal.WithLabelValues(c.provider.Name(), "success").Inc()

	c.cache.Set(key, *addr)
	result := *addr
	return &result, nil
}

// BulkReverseGeocode последовательно обрабатывает координаты, соблюдая тот же
// лимит частоты. Порядок результатов совпадает с порядком входа.
func (c *Client) BulkReverseGeocode(ctx context.Context, coords []Coordinate) []BulkResult {
	results := make([]BulkResult, len(coords))
	for i, coord := range coords {
		c.logger.WithFields(logrus.Fields{
			"component": "geocoding",
			"position":  i + 1,
			"total":     len(coords),
		}).Debug("Processing coordinate")

		addr, err := c.ReverseGeocode(ctx, coord.Latitude, coord.Longitude)
		results[i] = BulkResult{Coordinate: coord, Address: addr, Err: err}
	}
	return results
}

// CacheLen возвращает текущее количество записей в кэше
func (c *Client) CacheLen() int {
	return c.cache.Len()
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrNoResult):
		return "no_result"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	default:
		return "error"
	}
}
