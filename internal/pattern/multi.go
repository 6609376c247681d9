package pattern

import "github.com/rxtech-lab/argo-analysis/internal/types"

// BullishEngulfing flags a bullish candle whose body fully contains the
// previous bearish candle's body: it opens below the prior close and closes
// above the prior open. Index 0 is always false.
func (d *Detector) BullishEngulfing(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i := 1; i < len(candles); i++ {
		prev, curr := candles[i-1], candles[i]
		if prev.IsBearish() && curr.IsBullish() &&
			curr.Open < prev.Close && curr.Close > prev.Open {
			result[i] = true
		}
	}

	return result
}

// BearishEngulfing is the mirror of BullishEngulfing with the directions
// reversed.
func (d *Detector) BearishEngulfing(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i := 1; i < len(candles); i++ {
		prev, curr := candles[i-1], candles[i]
		if prev.IsBullish() && curr.IsBearish() &&
			curr.Open > prev.Close && curr.Close < prev.Open {
			result[i] = true
		}
	}

	return result
}

// MorningStar flags a three-candle reversal: a bearish first candle, a
// middle candle whose body is under 30% of its own range, and a bullish
// third candle closing above the midpoint of the first candle's body.
// Indices 0 and 1 are always false.
func (d *Detector) MorningStar(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i := 2; i < len(candles); i++ {
		first, middle, last := candles[i-2], candles[i-1], candles[i]

		if first.IsBearish() &&
			middle.Body() < middle.Range()*starBodyRatio &&
			last.IsBullish() &&
			last.Close > (first.Open+first.Close)/2 {
			result[i] = true
		}
	}

	return result
}

// EveningStar is the mirror of MorningStar: bullish first candle, small
// middle body, bearish third candle closing below the first candle's body
// midpoint.
func (d *Detector) EveningStar(candles []types.Candle) []bool {
	result := make([]bool, len(candles))

	for i := 2; i < len(candles); i++ {
		first, middle, last := candles[i-2], candles[i-1], candles[i]

		if first.IsBullish() &&
			middle.Body() < middle.Range()*starBodyRatio &&
			last.IsBearish() &&
			last.Close < (first.Open+first.Close)/2 {
			result[i] = true
		}
	}

	return result
}
