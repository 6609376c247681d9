package indicator

// EMA calculates the exponential moving average of prices with the given
// period. The value at index period-1 is seeded with the simple average of
// the first period prices; later values use the recursive form with
// multiplier 2/(period+1). Indices before period-1 are zero, and a series
// shorter than period yields all zeros.
func EMA(prices []float64, period int) []float64 {
	ema := make([]float64, len(prices))
	if len(prices) < period {
		return ema
	}

	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}

	ema[period-1] = sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema[i] = (prices[i]-ema[i-1])*multiplier + ema[i-1]
	}

	return ema
}
