// Package crime resolves area crime indices for a location through an ordered
// fallback chain: a city-specific public data API when the address matches a
// supported city, a coordinate-based heuristic, and finally a bounded-random
// synthetic generator. Resolve never fails; provenance records which tier
// produced the result.
package crime

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/risk-agent/internal/model"
)

// cityAdapter queries one city's public crime data portal. Adapters fetch
// recent incident records, split them into violent vs property categories via
// a keyword table, and reduce them to 0-100 indices.
type cityAdapter interface {
	provenance() string
	fetch(ctx context.Context) (*model.CrimeResult, error)
}

// Resolver runs the crime lookup chain. Safe for concurrent use.
type Resolver struct {
	httpClient   *http.Client
	adapters     map[string]cityAdapter
	synthetic    *syntheticGenerator
	lookbackDays int
	recentDays   int
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithHTTPClient sets a custom HTTP client for all city API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(r *Resolver) { r.httpClient = hc }
}

// WithLookback overrides the record window (days of records fetched) and the
// recent-incident window used by the city adapters.
func WithLookback(lookbackDays, recentDays int) Option {
	return func(r *Resolver) {
		if lookbackDays > 0 {
			r.lookbackDays = lookbackDays
		}
		if recentDays > 0 {
			r.recentDays = recentDays
		}
	}
}

// WithRandSeed seeds the synthetic generator for deterministic test output.
func WithRandSeed(seed uint64) Option {
	return func(r *Resolver) { r.synthetic = newSyntheticGenerator(seed) }
}

// NewResolver creates a crime Resolver with adapters for all supported cities.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		httpClient:   &http.Client{},
		synthetic:    newSyntheticGenerator(uint64(time.Now().UnixNano())),
		lookbackDays: 30,
		recentDays:   7,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.adapters = map[string]cityAdapter{
		CityChicago:      &chicagoAdapter{client: r.httpClient, lookbackDays: r.lookbackDays, recentDays: r.recentDays},
		CityNewYork:      &nycAdapter{client: r.httpClient},
		CityLosAngeles:   &laAdapter{client: r.httpClient},
		CitySanFrancisco: &sfAdapter{client: r.httpClient},
		// Philadelphia is on the supported list but its Carto SQL portal
		// needs different handling; the chain falls through to the
		// coordinate heuristic for it.
	}

	return r
}

// Resolve returns crime indices for a location. The chain advances on any
// adapter failure (timeout, malformed payload, empty dataset) without retrying
// the same tier, and the terminal synthetic tier always succeeds.
func (r *Resolver) Resolve(ctx context.Context, address string, coords *model.Coordinates, detectedCity string) model.CrimeResult {
	city := detectedCity
	if city == "" {
		city = DetectCity(address)
	}

	if adapter, ok := r.adapters[city]; ok {
		result, err := adapter.fetch(ctx)
		if err != nil {
			zap.L().Debug("crime: city adapter failed",
				zap.String("city", city),
				zap.Error(err),
			)
		} else if result != nil {
			zap.L().Info("crime: resolved from city API",
				zap.String("city", city),
				zap.String("provenance", result.Provenance),
			)
			return *result
		}
	}

	if coords != nil {
		result := estimateFromCoordinates(coords.Latitude, coords.Longitude)
		zap.L().Info("crime: resolved from coordinate heuristic",
			zap.Float64("latitude", coords.Latitude),
			zap.Float64("longitude", coords.Longitude),
		)
		return result
	}

	zap.L().Warn("crime: no city match and no coordinates, using synthetic data",
		zap.String("address", address),
	)
	return r.synthetic.generate()
}
