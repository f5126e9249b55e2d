package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/risk-agent/internal/config"
	"github.com/sells-group/risk-agent/internal/model"
	"github.com/sells-group/risk-agent/internal/pipeline"
	"github.com/sells-group/risk-agent/pkg/crime"
	"github.com/sells-group/risk-agent/pkg/geocode"
)

var assessInput model.AssessmentInput

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a single risk assessment and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		assessor := newAssessor(cfg)

		result, err := assessor.Assess(cmd.Context(), assessInput)
		if err != nil {
			return eris.Wrap(err, "assess")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// newAssessor wires the production resolvers from config.
func newAssessor(cfg *config.Config) *pipeline.Assessor {
	geoOpts := []geocode.Option{geocode.WithRateLimit(cfg.Geocode.FreeRPS)}
	if cfg.Geocode.GoogleAPIKey != "" {
		geoOpts = append(geoOpts, geocode.WithGoogleAPIKey(cfg.Geocode.GoogleAPIKey))
	}

	return pipeline.NewAssessor(
		geocode.NewResolver(geoOpts...),
		crime.NewResolver(crime.WithLookback(cfg.Crime.LookbackDays, cfg.Crime.RecentWindowDays)),
	)
}

func init() {
	assessCmd.Flags().StringVar(&assessInput.Address, "address", "", "property address (required)")
	assessCmd.Flags().StringVar(&assessInput.PropertyType, "property-type", "", "one of: home, rental, vacation home, business (required)")
	assessCmd.Flags().BoolVar(&assessInput.Fenced, "fenced", false, "property has perimeter fencing")
	assessCmd.Flags().BoolVar(&assessInput.Gated, "gated", false, "property has gated access")
	assessCmd.Flags().StringVar(&assessInput.OperatingHours, "hours", "", "operating hours, e.g. 24/7")
	assessCmd.Flags().StringVar(&assessInput.Notes, "notes", "", "free-text notes")
	_ = assessCmd.MarkFlagRequired("address")
	_ = assessCmd.MarkFlagRequired("property-type")
	rootCmd.AddCommand(assessCmd)
}
