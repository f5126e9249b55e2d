package crime

import "strings"

// Supported city identifiers.
const (
	CityChicago      = "chicago"
	CityNewYork      = "new york"
	CityLosAngeles   = "los angeles"
	CitySanFrancisco = "san francisco"
	CityPhiladelphia = "philadelphia"
)

// cityPriority is the detection order. Longer names come before shorter
// overlapping ones so "san francisco" wins over a bare "san" substring.
var cityPriority = []string{
	CitySanFrancisco,
	CityLosAngeles,
	CityNewYork,
	CityPhiladelphia,
	CityChicago,
}

// DetectCity matches an address against the supported city list with a
// case-insensitive substring check. Returns "" when no city matches.
func DetectCity(address string) string {
	if address == "" {
		return ""
	}
	lower := strings.ToLower(address)
	for _, city := range cityPriority {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}
