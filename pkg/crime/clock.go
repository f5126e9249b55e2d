package crime

import "github.com/jonboulle/clockwork"

// clock is the package time source for lookback windows. Tests freeze it via
// SetClock to make date filters deterministic.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
