// Package model defines the value objects exchanged between the resolvers,
// the scoring engine, and the external boundary. All entities are immutable
// per-request values; nothing here outlives a single assessment.
package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Property types accepted by the pipeline.
const (
	PropertyHome         = "home"
	PropertyRental       = "rental"
	PropertyVacationHome = "vacation home"
	PropertyBusiness     = "business"
)

// validPropertyTypes is the closed set the validation layer enforces.
var validPropertyTypes = map[string]bool{
	PropertyHome:         true,
	PropertyRental:       true,
	PropertyVacationHome: true,
	PropertyBusiness:     true,
}

// AssessmentInput is the request contract for a single risk assessment.
type AssessmentInput struct {
	Address        string `json:"address"`
	PropertyType   string `json:"property_type"`
	Fenced         bool   `json:"fenced"`
	Gated          bool   `json:"gated"`
	OperatingHours string `json:"operating_hours,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Normalize trims the address and lower-cases the property type, then
// validates both. An error here is a contract violation: the boundary layer
// is expected to reject bad input before it reaches the pipeline.
func (in *AssessmentInput) Normalize() error {
	in.Address = strings.TrimSpace(in.Address)
	if in.Address == "" {
		return eris.New("model: address cannot be empty")
	}

	in.PropertyType = strings.ToLower(strings.TrimSpace(in.PropertyType))
	if !validPropertyTypes[in.PropertyType] {
		return eris.Errorf("model: property_type must be one of: business, home, rental, vacation home (got %q)", in.PropertyType)
	}

	return nil
}

// Coordinates is a latitude/longitude pair for map display.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RiskDimensions holds the five 0-100 sub-scores plus derived summaries.
type RiskDimensions struct {
	CrimeRisk            int               `json:"crime_risk"`
	PropertyExposureRisk int               `json:"property_exposure_risk"`
	AccessibilityRisk    int               `json:"accessibility_risk"`
	NeighborhoodRisk     int               `json:"neighborhood_risk"`
	OperationalRisk      int               `json:"operational_risk"`
	Summaries            map[string]string `json:"summaries"`
}

// APISources records which fallback tier produced each resolver result.
type APISources struct {
	CrimeData   string `json:"crime_data"`
	Geolocation string `json:"geolocation"`
}

// AssessmentResult is the complete output of one assessment.
type AssessmentResult struct {
	Address         string         `json:"address"`
	PropertyType    string         `json:"property_type"`
	Fenced          bool           `json:"fenced"`
	Gated           bool           `json:"gated"`
	OperatingHours  string         `json:"operating_hours,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	RiskDimensions  RiskDimensions `json:"risk_dimensions"`
	OverallScore    float64        `json:"overall_score"`
	Confidence      float64        `json:"confidence"`
	Recommendations []string       `json:"recommendations"`
	APISources      APISources     `json:"api_sources_used"`
	Coordinates     *Coordinates   `json:"coordinates"`
}
