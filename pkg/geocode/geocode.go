// Package geocode resolves free-text addresses to coordinates and a
// neighborhood classification through an ordered provider chain: Google Maps
// (key-gated), Nominatim with address variants, Photon, and finally a
// synthetic generator that never fails. Resolve always returns a valid
// result; provenance records which tier produced it.
package geocode

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/risk-agent/internal/model"
)

// provider is one tier of the fallback chain. A nil hit with nil error means
// the provider answered but found no match; both cases advance the chain.
type provider interface {
	name() string
	resolve(ctx context.Context, address string) (*hit, error)
}

// hit is the minimal contract a provider must satisfy: in-range coordinates
// plus a formatted address.
type hit struct {
	latitude         float64
	longitude        float64
	formattedAddress string
}

// Resolver runs the geocoding chain. Safe for concurrent use.
type Resolver struct {
	httpClient *http.Client
	googleKey  string
	limiter    *rate.Limiter
	providers  []provider
	synthetic  *syntheticGenerator
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithGoogleAPIKey enables the Google Maps tier. Without a key the chain
// starts at Nominatim.
func WithGoogleAPIKey(key string) Option {
	return func(r *Resolver) { r.googleKey = key }
}

// WithHTTPClient sets a custom HTTP client for all provider requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(r *Resolver) { r.httpClient = hc }
}

// WithRateLimit sets the requests-per-second pacing for the free geocoders.
func WithRateLimit(rps float64) Option {
	return func(r *Resolver) { r.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithRandSeed seeds the synthetic generator for deterministic test output.
func WithRandSeed(seed uint64) Option {
	return func(r *Resolver) { r.synthetic = newSyntheticGenerator(seed) }
}

// NewResolver creates a geocoding Resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		httpClient: &http.Client{},
		// Nominatim usage policy allows one request per second.
		limiter:   rate.NewLimiter(1, 1),
		synthetic: newSyntheticGenerator(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.googleKey != "" {
		r.providers = append(r.providers, &googleProvider{client: r.httpClient, key: r.googleKey})
	}
	r.providers = append(r.providers,
		&nominatimProvider{client: r.httpClient, limiter: r.limiter},
		&photonProvider{client: r.httpClient, limiter: r.limiter},
	)

	return r
}

// Resolve geocodes an address. It never fails: provider timeouts, malformed
// payloads, and out-of-range coordinates advance the chain without retry, and
// the terminal synthetic tier always produces a valid result.
func (r *Resolver) Resolve(ctx context.Context, address string) model.GeoResult {
	if strings.TrimSpace(address) == "" {
		zap.L().Warn("geocode: empty address, using synthetic data")
		result := r.synthetic.generate()
		result.FormattedAddress = address
		return result
	}

	for _, p := range r.providers {
		h, err := p.resolve(ctx, address)
		if err != nil {
			zap.L().Debug("geocode: provider failed",
				zap.String("provider", p.name()),
				zap.Error(err),
			)
			continue
		}
		if h == nil {
			continue
		}
		if !validCoordinates(h.latitude, h.longitude) {
			zap.L().Debug("geocode: provider returned out-of-range coordinates",
				zap.String("provider", p.name()),
				zap.Float64("latitude", h.latitude),
				zap.Float64("longitude", h.longitude),
			)
			continue
		}

		neighborhood := classifyNeighborhood(h.latitude, h.longitude)
		zap.L().Info("geocode: resolved",
			zap.String("provider", p.name()),
			zap.Float64("latitude", h.latitude),
			zap.Float64("longitude", h.longitude),
		)
		return model.GeoResult{
			Latitude:          h.latitude,
			Longitude:         h.longitude,
			NeighborhoodType:  neighborhood,
			PopulationDensity: populationDensity(neighborhood),
			NearbyRiskFactors: nearbyRiskFactors(neighborhood),
			FormattedAddress:  h.formattedAddress,
			Provenance:        p.name(),
		}
	}

	zap.L().Warn("geocode: all providers failed, using synthetic data",
		zap.String("address", address),
	)
	result := r.synthetic.generate()
	result.FormattedAddress = address
	return result
}

// validCoordinates checks the hard latitude/longitude range invariant.
func validCoordinates(lat, lon float64) bool {
	return math.Abs(lat) <= 90 && math.Abs(lon) <= 180
}
