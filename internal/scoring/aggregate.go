package scoring

import "math"

// Dimension weights in integer hundredths. They must sum to exactly 100
// (i.e. 1.0); keeping them integral makes the weighted sum exact at
// two-decimal precision. aggregate_test.go asserts the invariant.
const (
	weightCrime         = 35
	weightExposure      = 25
	weightAccessibility = 15
	weightNeighborhood  = 15
	weightOperational   = 10
)

// confidenceTable maps the (crime real-data, geo real-data) pair to a discrete
// confidence level. An explicit lookup keeps the three permitted outputs exact
// instead of deriving them arithmetically. Provenance tiers are deliberately
// collapsed into real vs simulated for this table only.
var confidenceTable = map[[2]bool]float64{
	{true, true}:   1.0,
	{true, false}:  0.7,
	{false, true}:  0.7,
	{false, false}: 0.5,
}

// Aggregate combines the five dimensions into a single weighted overall score
// (2-decimal precision, clamped to [0,100]) and a discrete confidence level
// derived from resolver provenance.
func Aggregate(crime, exposure, accessibility, neighborhood, operational int, crimeReal, geoReal bool) (score, confidence float64) {
	weighted := weightCrime*crime +
		weightExposure*exposure +
		weightAccessibility*accessibility +
		weightNeighborhood*neighborhood +
		weightOperational*operational

	score = float64(weighted) / 100
	score = math.Min(math.Max(score, 0), 100)

	return score, confidenceTable[[2]bool{crimeReal, geoReal}]
}

// WeightSum returns the sum of the aggregation weights as a fraction of 1.0.
// Exists so the weights-sum-to-one invariant is testable without exporting
// each weight.
func WeightSum() float64 {
	return float64(weightCrime+weightExposure+weightAccessibility+weightNeighborhood+weightOperational) / 100
}
