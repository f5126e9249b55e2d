package model

// Neighborhood archetypes produced by the coordinate classifier.
const (
	NeighborhoodUrban    = "urban"
	NeighborhoodSuburban = "suburban"
	NeighborhoodRural    = "rural"
)

// Geolocation provenance tags, one per fallback tier.
const (
	GeoSourceGoogle    = "google-maps"
	GeoSourceNominatim = "nominatim"
	GeoSourcePhoton    = "photon"
	GeoSourceSynthetic = "synthetic"
)

// GeoResult is the outcome of address resolution. Coordinates are always
// present and within valid ranges regardless of which tier produced them.
type GeoResult struct {
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	NeighborhoodType  string   `json:"neighborhood_type"`
	PopulationDensity int      `json:"population_density"`
	NearbyRiskFactors []string `json:"nearby_risk_factors"`
	FormattedAddress  string   `json:"formatted_address"`
	Provenance        string   `json:"provenance"`
}

// IsReal reports whether the result came from an external geocoder rather
// than the synthetic fallback. Used for the confidence lookup only.
func (g GeoResult) IsReal() bool {
	return g.Provenance != GeoSourceSynthetic
}

// Coordinates returns the lat/lon pair for the serialized response.
func (g GeoResult) Coordinates() *Coordinates {
	return &Coordinates{Latitude: g.Latitude, Longitude: g.Longitude}
}
