// Package scoring implements the deterministic risk engine: the five-dimension
// scorer, the weighted aggregator with its provenance-driven confidence table,
// the tiered recommender, and the static property exposure profiles.
package scoring

import "github.com/sells-group/risk-agent/internal/model"

// baseExposure maps property type to its baseline exposure value. Types are
// ranked by how much unattended time and foot traffic they typically see.
var baseExposure = map[string]int{
	model.PropertyHome:         25,
	model.PropertyRental:       35,
	model.PropertyVacationHome: 45,
	model.PropertyBusiness:     50,
}

// defaultExposure applies when the property type is not in the table.
const defaultExposure = 30

// ProfileFor returns the exposure profile for a property type. The lookup is
// total: unknown types get the default baseline.
func ProfileFor(propertyType string) model.PropertyProfile {
	if v, ok := baseExposure[propertyType]; ok {
		return model.PropertyProfile{BaseExposure: v}
	}
	return model.PropertyProfile{BaseExposure: defaultExposure}
}
