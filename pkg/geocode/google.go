package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/risk-agent/internal/model"
)

const (
	googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	googleTimeout    = 10 * time.Second
)

// googleGeocodeResponse is the JSON response from the Google Geocoding API.
type googleGeocodeResponse struct {
	Results []googleResult `json:"results"`
	Status  string         `json:"status"`
}

type googleResult struct {
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	FormattedAddress string `json:"formatted_address"`
}

// googleProvider is the key-gated premium tier. It is only added to the
// chain when an API key is configured.
type googleProvider struct {
	client *http.Client
	key    string
}

func (p *googleProvider) name() string { return model.GeoSourceGoogle }

func (p *googleProvider) resolve(ctx context.Context, address string) (*hit, error) {
	ctx, cancel := context.WithTimeout(ctx, googleTimeout)
	defer cancel()

	params := url.Values{
		"address": {address},
		"key":     {p.key},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleGeocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google build request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: google returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google read body")
	}

	var googleResp googleGeocodeResponse
	if err := json.Unmarshal(body, &googleResp); err != nil {
		return nil, eris.Wrap(err, "geocode: google parse response")
	}

	if googleResp.Status != "OK" || len(googleResp.Results) == 0 {
		return nil, nil
	}

	result := googleResp.Results[0]
	formatted := result.FormattedAddress
	if formatted == "" {
		formatted = address
	}
	return &hit{
		latitude:         result.Geometry.Location.Lat,
		longitude:        result.Geometry.Location.Lng,
		formattedAddress: formatted,
	}, nil
}
