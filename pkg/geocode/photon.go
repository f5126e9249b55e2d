package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/risk-agent/internal/model"
)

const (
	photonAPIURL  = "https://photon.komoot.io/api"
	photonTimeout = 10 * time.Second
)

// photonResponse is the GeoJSON FeatureCollection returned by Photon.
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			Name    string `json:"name"`
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// photonProvider is the backup free geocoder, also OpenStreetMap-based.
type photonProvider struct {
	client  *http.Client
	limiter *rate.Limiter
}

func (p *photonProvider) name() string { return model.GeoSourcePhoton }

func (p *photonProvider) resolve(ctx context.Context, address string) (*hit, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: photon rate limit")
	}

	ctx, cancel := context.WithTimeout(ctx, photonTimeout)
	defer cancel()

	params := url.Values{
		"q":     {address},
		"limit": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photonAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon build request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: photon returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon read body")
	}

	var photonResp photonResponse
	if err := json.Unmarshal(body, &photonResp); err != nil {
		return nil, eris.Wrap(err, "geocode: photon parse response")
	}
	if len(photonResp.Features) == 0 {
		return nil, nil
	}

	feature := photonResp.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return nil, eris.New("geocode: photon feature missing coordinates")
	}

	// GeoJSON order is longitude first.
	lon := feature.Geometry.Coordinates[0]
	lat := feature.Geometry.Coordinates[1]

	var parts []string
	for _, p := range []string{feature.Properties.Name, feature.Properties.City, feature.Properties.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	formatted := strings.Join(parts, ", ")
	if formatted == "" {
		formatted = address
	}

	return &hit{latitude: lat, longitude: lon, formattedAddress: formatted}, nil
}
