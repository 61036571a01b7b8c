package geocoding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/travel_tracking_system/internal/models"
)

// nominatimProvider - бесплатный OpenStreetMap Nominatim, требует паузы между запросами
type nominatimProvider struct {
	baseURL   string
	userAgent string
	email     string
}

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

func (p *nominatimProvider) Name() string      { return ProviderNominatim }
func (p *nominatimProvider) RateLimited() bool { return true }

func (p *nominatimProvider) Reverse(ctx context.Context, httpClient *http.Client, lat, lon float64) (*models.Address, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("zoom", "18")
	if p.email != "" {
		params.Set("email", p.email)
	}

	var data nominatimResponse
	headers := map[string]string{"User-Agent": p.userAgent}
	if err := getJSON(ctx, httpClient, p.baseURL+"/reverse", params, headers, &data); err != nil {
		return nil, err
	}
	if data.Address == nil {
		return nil, ErrNoResult
	}

	a := data.Address
	return &models.Address{
		FullAddress:      data.DisplayName,
		FormattedAddress: formatNominatimAddress(a),
		StreetNumber:     a["house_number"],
		StreetName:       a["road"],
		Neighborhood:     a["neighbourhood"],
		City:             nominatimCity(a),
		State:            a["state"],
		PostalCode:       a["postcode"],
		Country:          a["country"],
		CountryCode:      a["country_code"],
	}, nil
}

func nominatimCity(a map[string]string) string {
	for _, k := range []string{"city", "town", "village"} {
		if a[k] != "" {
			return a[k]
		}
	}
	return ""
}

// formatNominatimAddress собирает строку вида "12 Main St, Springfield, Illinois 62701"
func formatNominatimAddress(a map[string]string) string {
	var parts []string

	switch {
	case a["house_number"] != "" && a["road"] != "":
		parts = append(parts, a["house_number"]+" "+a["road"])
	case a["road"] != "":
		parts = append(parts, a["road"])
	}

	if city := nominatimCity(a); city != "" {
		parts = append(parts, city)
	}

	if state := a["state"]; state != "" {
		if a["postcode"] != "" {
			state += " " + a["postcode"]
		}
		parts = append(parts, state)
	}

	return strings.Join(parts, ", ")
}
