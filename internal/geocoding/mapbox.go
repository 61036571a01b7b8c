package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/travel_tracking_system/internal/models"
)

// mapboxProvider - платный Mapbox Geocoding API
type mapboxProvider struct {
	baseURL string
	apiKey  string
}

type mapboxContext struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	ShortCode string `json:"short_code"`
}

type mapboxResponse struct {
	Features []struct {
		PlaceName string          `json:"place_name"`
		Address   string          `json:"address"`
		Text      string          `json:"text"`
		Context   []mapboxContext `json:"context"`
	} `json:"features"`
}

func (p *mapboxProvider) Name() string      { return ProviderMapbox }
func (p *mapboxProvider) RateLimited() bool { return false }

func (p *mapboxProvider) Reverse(ctx context.Context, httpClient *http.Client, lat, lon float64) (*models.Address, error) {
	params := url.Values{}
	params.Set("access_token", p.apiKey)
	params.Set("types", "address")

	// Mapbox ожидает порядок lon,lat
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%v,%v.json", p.baseURL, lon, lat)

	var data mapboxResponse
	if err := getJSON(ctx, httpClient, endpoint, params, nil, &data); err != nil {
		return nil, err
	}
	if len(data.Features) == 0 {
		return nil, ErrNoResult
	}

	feature := data.Features[0]
	byType := make(map[string]mapboxContext, len(feature.Context))
	for _, c := range feature.Context {
		kind, _, _ := strings.Cut(c.ID, ".")
		byType[kind] = c
	}

	return &models.Address{
		FullAddress:      feature.PlaceName,
		FormattedAddress: feature.PlaceName,
		StreetNumber:     feature.Address,
		StreetName:       feature.Text,
		Neighborhood:     byType["neighborhood"].Text,
		City:             byType["place"].Text,
		State:            byType["region"].Text,
		PostalCode:       byType["postcode"].Text,
		Country:          byType["country"].Text,
		CountryCode:      byType["country"].ShortCode,
	}, nil
}
