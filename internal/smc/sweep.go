package smc

import "github.com/rxtech-lab/argo-analysis/internal/types"

// LiquiditySweeps finds break-then-reclaim moves against the rolling
// extremes of the preceding lookback candles; the current candle is
// excluded from its own window. A bullish sweep pierces the rolling low but
// closes back above it, a bearish sweep pierces the rolling high but closes
// back below it. Indices before the window is full stay false.
func (d *Detector) LiquiditySweeps(candles []types.Candle) ([]bool, []bool) {
	lookback := d.config.SweepLookback
	bullish := make([]bool, len(candles))
	bearish := make([]bool, len(candles))

	for i := lookback; i < len(candles); i++ {
		rollingMin := candles[i-lookback].Low
		rollingMax := candles[i-lookback].High

		for j := i - lookback + 1; j < i; j++ {
			if candles[j].Low < rollingMin {
				rollingMin = candles[j].Low
			}

			if candles[j].High > rollingMax {
				rollingMax = candles[j].High
			}
		}

		if candles[i].Low < rollingMin && candles[i].Close > rollingMin {
			bullish[i] = true
		}

		if candles[i].High > rollingMax && candles[i].Close < rollingMax {
			bearish[i] = true
		}
	}

	return bullish, bearish
}
