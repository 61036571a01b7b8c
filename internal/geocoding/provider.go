package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shenikar/travel_tracking_system/internal/models"
)

const (
	ProviderNominatim = "nominatim"
	ProviderGoogle    = "google"
	ProviderMapbox    = "mapbox"
)

// Provider - внешний сервис обратного геокодирования
type Provider interface {
	Name() string
	// RateLimited сообщает, нужно ли выдерживать паузу между запросами
	RateLimited() bool
	Reverse(ctx context.Context, httpClient *http.Client, lat, lon float64) (*models.Address, error)
}

func newProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderNominatim:
		return &nominatimProvider{
			baseURL:   orDefault(cfg.BaseURL, "https://nominatim.openstreetmap.org"),
			userAgent: cfg.UserAgent,
			email:     cfg.Email,
		}, nil
	case ProviderGoogle:
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("%w: google", ErrMissingAPIKey)
		}
		return &googleProvider{
			baseURL: orDefault(cfg.BaseURL, "https://maps.googleapis.com"),
			apiKey:  cfg.GoogleAPIKey,
		}, nil
	case ProviderMapbox:
		if cfg.MapboxAPIKey == "" {
			return nil, fmt.Errorf("%w: mapbox", ErrMissingAPIKey)
		}
		return &mapboxProvider{
			baseURL: orDefault(cfg.BaseURL, "https://api.mapbox.com"),
			apiKey:  cfg.MapboxAPIKey,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// getJSON выполняет GET и декодирует тело ответа в out
func getJSON(ctx context.Context, httpClient *http.Client, endpoint string, params url.Values, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUpstream, err)
	}
	return nil
}
