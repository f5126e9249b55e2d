package scoring

import "slices"

// Recommendation tiers. Thresholds are exclusive at the upper bound of the
// lower tier: a score of exactly 60.00 falls into the standard tier.
var (
	advancedRecommendations = []string{
		"Install advanced CCTV with remote monitoring",
		"Deploy regular security patrols",
		"Add smart perimeter lighting",
		"Upgrade fences and gates",
		"Enable controlled access systems",
	}
	enhancedRecommendations = []string{
		"Install 1080p CCTV cameras",
		"Enable motion-activated lighting",
		"Improve fencing and gate systems",
	}
	standardRecommendations = []string{
		"Install basic CCTV",
		"Improve door/window locks",
		"Trim shrubs to increase visibility",
	}
	basicRecommendations = []string{
		"Basic home security recommended",
	}
)

// Recommend returns the ordered recommendation list for an overall score.
// Pure and total over the real line. The returned slice is a fresh copy so
// callers cannot mutate the shared tier definitions.
func Recommend(score float64) []string {
	switch {
	case score > 75:
		return slices.Clone(advancedRecommendations)
	case score > 60:
		return slices.Clone(enhancedRecommendations)
	case score > 40:
		return slices.Clone(standardRecommendations)
	default:
		return slices.Clone(basicRecommendations)
	}
}
