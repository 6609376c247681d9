package pattern

import "github.com/rxtech-lab/argo-analysis/internal/types"

// Hammer flags candles whose lower wick dominates a small body: lower wick
// above twice the body with the upper wick under half of it. Zero-range
// candles never fire.
func (d *Detector) Hammer(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i, c := range candles {
		if c.Range() <= 0 {
			continue
		}

		if c.LowerWick() > c.Body()*wickDominanceRatio && c.UpperWick() < c.Body()*wickToleranceRatio {
			result[i] = true
		}
	}

	return result
}

// InvertedHammer is the mirror of Hammer: upper wick above twice the body
// with the lower wick under half of it.
func (d *Detector) InvertedHammer(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i, c := range candles {
		if c.Range() <= 0 {
			continue
		}

		if c.UpperWick() > c.Body()*wickDominanceRatio && c.LowerWick() < c.Body()*wickToleranceRatio {
			result[i] = true
		}
	}

	return result
}

// HangingMan shares the Hammer predicate. The trend context that separates
// the two patterns is not evaluated here; callers that care about the
// distinction must bring their own trend filter.
func (d *Detector) HangingMan(candles []types.Candle) []bool {
	return d.Hammer(candles)
}

// DragonflyDoji flags candles with a negligible body whose lower wick spans
// most of the range: body under 5% of the range, lower wick above 70% of it
// and upper wick under 5% of it.
func (d *Detector) DragonflyDoji(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i, c := range candles {
		r := c.Range()
		if r <= 0 {
			continue
		}

		if c.Body() < r*dojiBodyRatio && c.LowerWick() > r*dojiWickRatio && c.UpperWick() < r*dojiBodyRatio {
			result[i] = true
		}
	}

	return result
}

// GravestoneDoji is the mirror of DragonflyDoji with the wick roles swapped.
func (d *Detector) GravestoneDoji(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i, c := range candles {
		r := c.Range()
		if r <= 0 {
			continue
		}

		if c.Body() < r*dojiBodyRatio && c.UpperWick() > r*dojiWickRatio && c.LowerWick() < r*dojiBodyRatio {
			result[i] = true
		}
	}

	return result
}
