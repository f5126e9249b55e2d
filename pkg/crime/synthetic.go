package crime

import (
	"math/rand/v2"
	"sync"

	"github.com/sells-group/risk-agent/internal/model"
)

// Bounds for the synthetic generator. Kept inside plausible ranges so the
// downstream scorer sees realistic inputs even on total data loss.
const (
	synthViolentMin  = 20
	synthViolentMax  = 80
	synthPropertyMin = 15
	synthPropertyMax = 70
	synthRecentMax   = 10
)

// syntheticGenerator is the terminal chain tier: bounded-random indices with
// no I/O, so it cannot fail.
type syntheticGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSyntheticGenerator(seed uint64) *syntheticGenerator {
	return &syntheticGenerator{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *syntheticGenerator) generate() model.CrimeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CrimeResult{
		ViolentCrimeIndex:   synthViolentMin + s.rng.IntN(synthViolentMax-synthViolentMin+1),
		PropertyCrimeIndex:  synthPropertyMin + s.rng.IntN(synthPropertyMax-synthPropertyMin+1),
		RecentIncidentCount: s.rng.IntN(synthRecentMax + 1),
		Provenance:          model.CrimeSourceSynthetic,
	}
}
