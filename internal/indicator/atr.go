package indicator

import "math"

// ATR calculates the average true range over the high/low/close triple with
// the given period. The true range at index i >= 1 is the largest of the
// high-low span and the absolute gaps from the previous close; index 0 has
// no true range. The value at index period is seeded with the simple mean
// of the first period true ranges, then smoothed with Wilder's factor
// alpha = 1/period. Indices before period are zero, and a series shorter
// than period+1 yields all zeros.
func ATR(high, low, closes []float64, period int) []float64 {
	atr := make([]float64, len(high))
	if len(high) < period+1 {
		return atr
	}

	trueRanges := make([]float64, len(high))
	for i := 1; i < len(high); i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - closes[i-1])
		lc := math.Abs(low[i] - closes[i-1])
		trueRanges[i] = math.Max(hl, math.Max(hc, lc))
	}

	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += trueRanges[i]
	}

	atr[period] = sum / float64(period)

	alpha := 1.0 / float64(period)
	for i := period + 1; i < len(high); i++ {
		atr[i] = atr[i-1]*(1-alpha) + trueRanges[i]*alpha
	}

	return atr
}
