package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/risk-agent/internal/model"
)

func TestProfileFor_KnownTypes(t *testing.T) {
	assert.Equal(t, 25, ProfileFor(model.PropertyHome).BaseExposure)
	assert.Equal(t, 35, ProfileFor(model.PropertyRental).BaseExposure)
	assert.Equal(t, 45, ProfileFor(model.PropertyVacationHome).BaseExposure)
	assert.Equal(t, 50, ProfileFor(model.PropertyBusiness).BaseExposure)
}

func TestProfileFor_UnknownTypeGetsDefault(t *testing.T) {
	assert.Equal(t, 30, ProfileFor("houseboat").BaseExposure)
	assert.Equal(t, 30, ProfileFor("").BaseExposure)
}
