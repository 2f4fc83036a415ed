package systems

import "math"

// IntervalGate opens on the first tick and then once every interval of
// simulated time. It counts ticks so it never drifts against the clock.
type IntervalGate struct {
	every uint64
}

// NewIntervalGate creates a gate for interval seconds at tickRate ticks per second
func NewIntervalGate(interval float64, tickRate int) IntervalGate {
	every := uint64(math.Round(interval * float64(tickRate)))
	if every == 0 {
		every = 1
	}
	return IntervalGate{every: every}
}

// Open reports whether the gate opens on tick. Ticks are numbered from 1.
func (g IntervalGate) Open(tick uint64) bool {
	if tick == 0 {
		return false
	}
	return (tick-1)%g.every == 0
}

// Every returns the gate period in ticks
func (g IntervalGate) Every() uint64 {
	return g.every
}
