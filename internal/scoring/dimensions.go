package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/risk-agent/internal/model"
)

// Per-property-type adjustments for each dimension. Vacation homes sit empty
// for long, predictable stretches; primary homes have people around.
const (
	exposureVacationAdj = 15
	exposureHomeAdj     = -5

	accessVacationAdj = 12
	accessHomeAdj     = -3

	operationalBase        = 20
	operationalVacationAdj = 35 // 25 for extended vacancy + 10 for predictable absence
	operationalHomeAdj     = -5
	operationalHoursAdj    = 30
	operationalTheftAdj    = 20
)

// Nearby risk factor weights for the neighborhood dimension.
var riskTagWeights = map[string]int{
	"nightclub": 20,
	"warehouse": 15,
	"school":    5,
}

// ComputeDimensions calculates the five 0-100 risk dimensions from the
// resolver outputs, the property profile, and the request attributes.
// Pure: no I/O, no shared state.
func ComputeDimensions(crime model.CrimeResult, geo model.GeoResult, profile model.PropertyProfile, in model.AssessmentInput) model.RiskDimensions {
	violent := float64(crime.ViolentCrimeIndex)
	propIdx := float64(crime.PropertyCrimeIndex)
	recent := float64(crime.RecentIncidentCount)

	// Recent incidents matter more than the rolling indices (x3 multiplier).
	crimeRisk := math.Min(violent*0.6+propIdx*0.3+recent*3, 100)

	exposure := float64(profile.BaseExposure)
	exposure += perimeterDelta(in.Fenced)
	exposure += perimeterDelta(in.Gated)
	switch in.PropertyType {
	case model.PropertyVacationHome:
		exposure += exposureVacationAdj
	case model.PropertyHome:
		exposure += exposureHomeAdj
	}
	exposure = clamp(exposure)

	accessibility := 40.0
	if geo.NeighborhoodType == model.NeighborhoodUrban {
		accessibility = 60.0
	}
	accessibility += perimeterDelta(in.Fenced)
	switch in.PropertyType {
	case model.PropertyVacationHome:
		accessibility += accessVacationAdj
	case model.PropertyHome:
		accessibility += accessHomeAdj
	}
	accessibility = clamp(accessibility)

	neighborhood := float64(geo.PopulationDensity) / 100.0
	for _, tag := range geo.NearbyRiskFactors {
		neighborhood += float64(riskTagWeights[strings.ToLower(tag)])
	}
	neighborhood = clamp(neighborhood)

	operational := float64(operationalBase)
	switch in.PropertyType {
	case model.PropertyVacationHome:
		operational += operationalVacationAdj
	case model.PropertyHome:
		operational += operationalHomeAdj
	}
	if strings.Contains(in.OperatingHours, "24/7") {
		operational += operationalHoursAdj
	}
	if strings.Contains(strings.ToLower(in.Notes), "theft") {
		operational += operationalTheftAdj
	}
	operational = clamp(operational)

	return model.RiskDimensions{
		CrimeRisk:            round(crimeRisk),
		PropertyExposureRisk: round(exposure),
		AccessibilityRisk:    round(accessibility),
		NeighborhoodRisk:     round(neighborhood),
		OperationalRisk:      round(operational),
		Summaries: map[string]string{
			"crime_risk":             crimeSummary(crimeRisk, crime),
			"property_exposure_risk": exposureSummary(in),
			"accessibility_risk":     accessibilitySummary(geo.NeighborhoodType, in),
			"neighborhood_risk":      neighborhoodSummary(geo),
			"operational_risk":       operationalSummary(in),
		},
	}
}

// perimeterDelta returns the score delta for a perimeter feature flag:
// having it lowers risk, lacking it raises risk.
func perimeterDelta(present bool) float64 {
	if present {
		return -5
	}
	return 10
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

func round(v float64) int {
	return int(math.Round(v))
}

// crimeSummary buckets the crime dimension into high (>=70), moderate (>=40)
// and low (<40) severity, interpolating the contributing indices.
func crimeSummary(score float64, crime model.CrimeResult) string {
	switch {
	case score >= 70:
		return fmt.Sprintf("High crime area with %d violent and %d property crime indices. %d recent incidents reported.",
			crime.ViolentCrimeIndex, crime.PropertyCrimeIndex, crime.RecentIncidentCount)
	case score >= 40:
		return fmt.Sprintf("Moderate crime levels. %d violent crime index, %d property crime index, %d recent incidents.",
			crime.ViolentCrimeIndex, crime.PropertyCrimeIndex, crime.RecentIncidentCount)
	default:
		return fmt.Sprintf("Relatively low crime area. %d violent crime index, %d property crime index, %d recent incidents.",
			crime.ViolentCrimeIndex, crime.PropertyCrimeIndex, crime.RecentIncidentCount)
	}
}

func propertyContext(propertyType string) string {
	switch propertyType {
	case model.PropertyVacationHome:
		return " Vacation homes face higher exposure risk due to extended unoccupied periods."
	case model.PropertyHome:
		return " Primary residence benefits from regular occupancy providing natural deterrence."
	default:
		return ""
	}
}

func exposureSummary(in model.AssessmentInput) string {
	ctx := propertyContext(in.PropertyType)
	switch {
	case in.Fenced && in.Gated:
		return "Property has both fencing and gating, providing strong perimeter security." + ctx
	case in.Fenced:
		return "Property has fenced perimeter, providing moderate protection." + ctx
	case in.Gated:
		return "Property has gated perimeter, providing moderate protection." + ctx
	default:
		return "Property lacks perimeter security (no fencing or gating), increasing exposure risk." + ctx
	}
}

func accessibilitySummary(neighborhoodType string, in model.AssessmentInput) string {
	if neighborhoodType == "" {
		neighborhoodType = model.NeighborhoodSuburban
	}
	base := strings.ToUpper(neighborhoodType[:1]) + neighborhoodType[1:] + " area"

	var note string
	switch in.PropertyType {
	case model.PropertyVacationHome:
		note = " Vacation homes face higher accessibility risk due to less frequent monitoring."
	case model.PropertyHome:
		note = " Primary residence benefits from regular presence providing natural monitoring."
	}

	if in.Fenced {
		return base + " with fencing reduces unauthorized access risk." + note
	}
	return base + " without fencing increases accessibility risk for potential threats." + note
}

func neighborhoodSummary(geo model.GeoResult) string {
	tags := make(map[string]bool, len(geo.NearbyRiskFactors))
	for _, t := range geo.NearbyRiskFactors {
		tags[strings.ToLower(t)] = true
	}

	var items []string
	if tags["nightclub"] {
		items = append(items, "nightlife")
	}
	if tags["warehouse"] {
		items = append(items, "industrial activity")
	}
	if tags["school"] {
		items = append(items, "school zone")
	}

	density := "Low"
	switch {
	case geo.PopulationDensity > 5000:
		density = "High"
	case geo.PopulationDensity > 2000:
		density = "Moderate"
	}

	if len(items) > 0 {
		return fmt.Sprintf("%s density area (%d/sq mi) with nearby %s.", density, geo.PopulationDensity, strings.Join(items, ", "))
	}
	return fmt.Sprintf("%s population density (%d/sq mi) with minimal nearby risk factors.", density, geo.PopulationDensity)
}

func operationalSummary(in model.AssessmentInput) string {
	var factors []string
	switch in.PropertyType {
	case model.PropertyVacationHome:
		factors = append(factors, "extended unoccupied periods", "predictable absence patterns")
	case model.PropertyHome:
		factors = append(factors, "regular occupancy provides deterrence")
	}
	if strings.Contains(in.OperatingHours, "24/7") {
		factors = append(factors, "24/7 operation")
	}
	if strings.Contains(strings.ToLower(in.Notes), "theft") {
		factors = append(factors, "recent theft incidents")
	}

	if len(factors) > 0 {
		return "Operational risk factors: " + strings.Join(factors, ", ") + "."
	}
	return "Standard operational risk with no significant concerns identified."
}
