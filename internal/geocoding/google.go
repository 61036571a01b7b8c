package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shenikar/travel_tracking_system/internal/models"
)

// googleProvider - платный Google Maps Geocoding API
type googleProvider struct {
	baseURL string
	apiKey  string
}

type googleComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string            `json:"formatted_address"`
		AddressComponents []googleComponent `json:"address_components"`
	} `json:"results"`
}

func (p *googleProvider) Name() string      { return ProviderGoogle }
func (p *googleProvider) RateLimited() bool { return false }

func (p *googleProvider) Reverse(ctx context.Context, httpClient *http.Client, lat, lon float64) (*models.Address, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%v,%v", lat, lon))
	params.Set("key", p.apiKey)

	var data googleResponse
	if err := getJSON(ctx, httpClient, p.baseURL+"/maps/api/geocode/json", params, nil, &data); err != nil {
		return nil, err
	}
	if data.Status != "OK" || len(data.Results) == 0 {
		return nil, ErrNoResult
	}

	result := data.Results[0]
	components := make(map[string]googleComponent, len(result.AddressComponents))
	for _, c := range result.AddressComponents {
		if len(c.Types) > 0 {
			components[c.Types[0]] = c
		}
	}

	return &models.Address{
		FullAddress:      result.FormattedAddress,
		FormattedAddress: result.FormattedAddress,
		StreetNumber:     components["street_number"].LongName,
		StreetName:       components["route"].LongName,
		Neighborhood:     components["neighborhood"].LongName,
		City:             components["locality"].LongName,
		State:            components["administrative_area_level_1"].LongName,
		PostalCode:       components["postal_code"].LongName,
		Country:          components["country"].LongName,
		CountryCode:      components["country"].ShortName,
	}, nil
}
