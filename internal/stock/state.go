package stock

import "math"

// floatSlack absorbs binary floating point drift in comparisons and ceilings.
const floatSlack = 1e-9

// State is the dual-counter stock representation: unopened packages plus a
// loose remainder of atomic units, with the packaging ratio of the batch.
// Simple (unsplit) items use Sealed=0 and Ratio=1.
type State struct {
	Sealed int
	Loose  float64
	Ratio  float64
}

// Total derives the stock quantity in atomic units from the counters.
func (s State) Total() float64 {
	return round2(float64(s.Sealed)*s.Ratio + s.Loose)
}

// round2 rounds to two decimal places, the storage precision for all
// quantities. Repeated deductions would otherwise accumulate runaway
// fractional remainders.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
