package geocode

import (
	"math/rand/v2"
	"sync"

	"github.com/sells-group/risk-agent/internal/model"
)

// boundingBox is a closed coordinate rectangle to sample from.
type boundingBox struct {
	latMin, latMax float64
	lonMin, lonMax float64
}

// archetypeBounds gives each neighborhood archetype a plausible US sampling
// region: urban draws from the NYC metro box, suburban from the mid-Atlantic
// corridor, rural from the wider eastern interior.
var archetypeBounds = map[string]boundingBox{
	model.NeighborhoodUrban:    {latMin: 40.0, latMax: 41.0, lonMin: -74.0, lonMax: -73.0},
	model.NeighborhoodSuburban: {latMin: 38.0, latMax: 42.0, lonMin: -75.0, lonMax: -70.0},
	model.NeighborhoodRural:    {latMin: 35.0, latMax: 45.0, lonMin: -85.0, lonMax: -70.0},
}

var archetypes = []string{
	model.NeighborhoodUrban,
	model.NeighborhoodSuburban,
	model.NeighborhoodRural,
}

// syntheticGenerator is the terminal chain tier. It performs no I/O and by
// construction cannot fail, which makes the whole chain total.
type syntheticGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSyntheticGenerator(seed uint64) *syntheticGenerator {
	return &syntheticGenerator{rng: rand.New(rand.NewPCG(seed, 0))}
}

// generate picks an archetype and samples coordinates from its bounding box.
func (s *syntheticGenerator) generate() model.GeoResult {
	s.mu.Lock()
	archetype := archetypes[s.rng.IntN(len(archetypes))]
	bounds := archetypeBounds[archetype]
	lat := bounds.latMin + s.rng.Float64()*(bounds.latMax-bounds.latMin)
	lon := bounds.lonMin + s.rng.Float64()*(bounds.lonMax-bounds.lonMin)
	s.mu.Unlock()

	return model.GeoResult{
		Latitude:          lat,
		Longitude:         lon,
		NeighborhoodType:  archetype,
		PopulationDensity: populationDensity(archetype),
		NearbyRiskFactors: nearbyRiskFactors(archetype),
		FormattedAddress:  "Simulated " + archetype + " location",
		Provenance:        model.GeoSourceSynthetic,
	}
}
