package crime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCity(t *testing.T) {
	tests := []struct {
		address  string
		expected string
	}{
		{"123 Main St, Chicago, IL", CityChicago},
		{"456 Broadway, New York, NY", CityNewYork},
		{"789 Sunset Blvd, Los Angeles, CA", CityLosAngeles},
		{"1 Market St, San Francisco, CA", CitySanFrancisco},
		{"100 Broad St, Philadelphia, PA", CityPhiladelphia},
		{"CHICAGO AVE, CHICAGO", CityChicago},
		// "San" alone must not match San Francisco.
		{"300 Alamo Plaza, San Antonio, TX", ""},
		{"10 Downing St, London", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectCity(tt.address), "address %q", tt.address)
	}
}
