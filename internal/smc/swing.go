package smc

import "github.com/moznion/go-optional"

// SwingPoints locates confirmed pivot extremes over equal-length high and
// low series. An interior index is a swing high only when its high is
// strictly greater than every other high in the window of 2*legs+1 candles
// centered on it; a tie disqualifies the candidate. Swing lows use the
// symmetric strictly-lower test. The first and last legs indices are never
// evaluated and stay None, as does every index when the series is shorter
// than the window.
func (d *Detector) SwingPoints(high, low []float64) ([]optional.Option[float64], []optional.Option[float64]) {
	legs := d.config.PivotLegs
	swingHighs := make([]optional.Option[float64], len(high))
	swingLows := make([]optional.Option[float64], len(high))

	if len(high) < legs*2+1 {
		return swingHighs, swingLows
	}

	for i := legs; i < len(high)-legs; i++ {
		isSwingHigh := true
		isSwingLow := true

		for j := i - legs; j <= i+legs; j++ {
			if j == i {
				continue
			}

			if high[j] >= high[i] {
				isSwingHigh = false
			}

			if low[j] <= low[i] {
				isSwingLow = false
			}

			if !isSwingHigh && !isSwingLow {
				break
			}
		}

		if isSwingHigh {
			swingHighs[i] = optional.Some(high[i])
		}

		if isSwingLow {
			swingLows[i] = optional.Some(low[i])
		}
	}

	return swingHighs, swingLows
}
