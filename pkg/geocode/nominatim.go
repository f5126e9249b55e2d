package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/risk-agent/internal/model"
)

const (
	nominatimSearchURL = "https://nominatim.openstreetmap.org/search"
	nominatimTimeout   = 15 * time.Second
	nominatimUserAgent = "risk-agent/1.0"
)

// nominatimPlace is one entry of the Nominatim search response. Coordinates
// arrive as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// nominatimProvider queries the free OpenStreetMap geocoder. To raise the hit
// rate it tries the raw address first, then variants with country suffixes.
type nominatimProvider struct {
	client  *http.Client
	limiter *rate.Limiter
}

func (p *nominatimProvider) name() string { return model.GeoSourceNominatim }

func (p *nominatimProvider) resolve(ctx context.Context, address string) (*hit, error) {
	variants := []string{
		address,
		address + ", USA",
		address + ", United States",
	}

	var lastErr error
	for _, variant := range variants {
		h, err := p.search(ctx, variant)
		if err != nil {
			zap.L().Debug("geocode: nominatim variant failed",
				zap.String("query", variant),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if h != nil {
			return h, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

// search runs a single Nominatim query with its own timeout.
func (p *nominatimProvider) search(ctx context.Context, query string) (*hit, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim rate limit")
	}

	ctx, cancel := context.WithTimeout(ctx, nominatimTimeout)
	defer cancel()

	params := url.Values{
		"q":               {query},
		"format":          {"json"},
		"limit":           {"1"},
		"addressdetails":  {"1"},
		"accept-language": {"en"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nominatimSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim build request")
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim read body")
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse response")
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse lat")
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse lon")
	}

	formatted := places[0].DisplayName
	if formatted == "" {
		formatted = query
	}
	return &hit{latitude: lat, longitude: lon, formattedAddress: formatted}, nil
}
