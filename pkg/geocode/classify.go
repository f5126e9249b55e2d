package geocode

import (
	"math"

	"github.com/sells-group/risk-agent/internal/model"
)

// Coordinate thresholds for the neighborhood heuristic. This is a documented
// approximation (major US metros cluster above lat 40 / east of lon -75), not
// census data.
const (
	urbanLatThreshold    = 40.0
	urbanLonThreshold    = 75.0
	suburbanLatThreshold = 35.0
	suburbanLonThreshold = 80.0
)

// classifyNeighborhood maps coordinates to an archetype.
func classifyNeighborhood(lat, lon float64) string {
	absLat, absLon := math.Abs(lat), math.Abs(lon)
	switch {
	case absLat > urbanLatThreshold || absLon < urbanLonThreshold:
		return model.NeighborhoodUrban
	case absLat > suburbanLatThreshold || absLon < suburbanLonThreshold:
		return model.NeighborhoodSuburban
	default:
		return model.NeighborhoodRural
	}
}

// archetypeDensity holds the per-area population estimate for each archetype.
var archetypeDensity = map[string]int{
	model.NeighborhoodUrban:    8000,
	model.NeighborhoodSuburban: 3000,
	model.NeighborhoodRural:    500,
}

// archetypeRiskFactors is the fixed nearby-risk tag set per archetype.
var archetypeRiskFactors = map[string][]string{
	model.NeighborhoodUrban:    {"nightclub", "warehouse", "school"},
	model.NeighborhoodSuburban: {"school"},
	model.NeighborhoodRural:    {},
}

func populationDensity(neighborhood string) int {
	if d, ok := archetypeDensity[neighborhood]; ok {
		return d
	}
	return archetypeDensity[model.NeighborhoodSuburban]
}

func nearbyRiskFactors(neighborhood string) []string {
	return archetypeRiskFactors[neighborhood]
}
