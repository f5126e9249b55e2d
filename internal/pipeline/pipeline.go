// Package pipeline orchestrates a single risk assessment: geolocation, crime
// lookup, property profile, dimension scoring, aggregation, and
// recommendations. Each assessment is an independent, stateless unit of work.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/risk-agent/internal/model"
	"github.com/sells-group/risk-agent/internal/scoring"
	"github.com/sells-group/risk-agent/pkg/crime"
)

// GeoResolver resolves an address to coordinates and a neighborhood
// classification. Implementations never fail; degraded results carry
// synthetic provenance instead.
type GeoResolver interface {
	Resolve(ctx context.Context, address string) model.GeoResult
}

// CrimeResolver resolves crime indices for a location. Same never-fails
// contract as GeoResolver.
type CrimeResolver interface {
	Resolve(ctx context.Context, address string, coords *model.Coordinates, detectedCity string) model.CrimeResult
}

// Assessor runs the assessment pipeline. Stateless apart from the injected
// resolvers; safe for concurrent use.
type Assessor struct {
	geo   GeoResolver
	crime CrimeResolver
}

// NewAssessor creates an Assessor with the given resolvers.
func NewAssessor(geo GeoResolver, crimeResolver CrimeResolver) *Assessor {
	return &Assessor{geo: geo, crime: crimeResolver}
}

// Assess runs the full pipeline for one request. Geolocation must complete
// before the crime lookup because city detection and the coordinate heuristic
// depend on its output; the two resolvers are therefore strictly sequential.
// Resolver degradation never surfaces as an error — it flows through
// provenance and confidence. The only error path is a contract violation in
// the input, which validation upstream should already have rejected.
func (a *Assessor) Assess(ctx context.Context, in model.AssessmentInput) (*model.AssessmentResult, error) {
	if err := in.Normalize(); err != nil {
		return nil, eris.Wrap(err, "pipeline: invalid input")
	}

	assessmentID := uuid.NewString()
	start := time.Now()
	log := zap.L().With(
		zap.String("assessment_id", assessmentID),
		zap.String("address", in.Address),
	)
	log.Info("assessment started")

	geoResult := a.geo.Resolve(ctx, in.Address)

	// City detection runs on the geocoded address, which usually carries the
	// city name even when the raw input does not.
	city := crime.DetectCity(geoResult.FormattedAddress)
	crimeResult := a.crime.Resolve(ctx, in.Address, geoResult.Coordinates(), city)

	profile := scoring.ProfileFor(in.PropertyType)

	dimensions := scoring.ComputeDimensions(crimeResult, geoResult, profile, in)

	overall, confidence := scoring.Aggregate(
		dimensions.CrimeRisk,
		dimensions.PropertyExposureRisk,
		dimensions.AccessibilityRisk,
		dimensions.NeighborhoodRisk,
		dimensions.OperationalRisk,
		crimeResult.IsReal(),
		geoResult.IsReal(),
	)

	recommendations := scoring.Recommend(overall)

	log.Info("assessment complete",
		zap.Float64("overall_score", overall),
		zap.Float64("confidence", confidence),
		zap.String("geo_provenance", geoResult.Provenance),
		zap.String("crime_provenance", crimeResult.Provenance),
		zap.Duration("duration", time.Since(start)),
	)

	return &model.AssessmentResult{
		Address:         in.Address,
		PropertyType:    in.PropertyType,
		Fenced:          in.Fenced,
		Gated:           in.Gated,
		OperatingHours:  in.OperatingHours,
		Notes:           in.Notes,
		RiskDimensions:  dimensions,
		OverallScore:    overall,
		Confidence:      confidence,
		Recommendations: recommendations,
		APISources: model.APISources{
			CrimeData:   crimeResult.Provenance,
			Geolocation: geoResult.Provenance,
		},
		Coordinates: geoResult.Coordinates(),
	}, nil
}
