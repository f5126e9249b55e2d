package model

// Crime data provenance tags. The city tiers map one-to-one to the public
// data portals; the heuristic and synthetic tags mark the fallback tiers.
const (
	CrimeSourceChicago   = "chicago-api"
	CrimeSourceNYC       = "nyc-api"
	CrimeSourceLA        = "la-api"
	CrimeSourceSF        = "sf-api"
	CrimeSourceHeuristic = "coordinate-heuristic"
	CrimeSourceSynthetic = "synthetic"
)

// CrimeResult holds area crime indices for a resolved location. Indices are
// clamped to [0,100] by every tier that produces them.
type CrimeResult struct {
	ViolentCrimeIndex   int    `json:"violent_crime_index"`
	PropertyCrimeIndex  int    `json:"property_crime_index"`
	RecentIncidentCount int    `json:"recent_incident_count"`
	Provenance          string `json:"provenance"`
}

// IsReal reports whether the indices derive from observed data (city API or
// coordinate heuristic) rather than the synthetic generator. The heuristic
// tier deliberately counts as real here; only the confidence calculation
// consumes this collapsed view.
func (c CrimeResult) IsReal() bool {
	return c.Provenance != CrimeSourceSynthetic
}

// PropertyProfile is the static per-property-type exposure baseline.
type PropertyProfile struct {
	BaseExposure int `json:"base_exposure"`
}
