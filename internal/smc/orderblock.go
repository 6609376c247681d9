package smc

import "github.com/rxtech-lab/argo-analysis/internal/types"

// OrderBlocks finds the last opposing candle before a directional engulf.
// A bullish block exists when a red candle is followed by a green candle
// closing above the red candle's open; the zone spans the red candle's body
// and is anchored at that candle, one index before the engulf. The bearish
// case mirrors it. The boolean series mark the anchor indices.
func (d *Detector) OrderBlocks(candles []types.Candle) ([]bool, []bool, []types.OrderBlockZone) {
	bullish := make([]bool, len(candles))
	bearish := make([]bool, len(candles))
	zones := []types.OrderBlockZone{}

	for i := 1; i < len(candles); i++ {
		prev, curr := candles[i-1], candles[i]

		if prev.IsBearish() && curr.IsBullish() && curr.Close > prev.Open {
			zones = append(zones, types.OrderBlockZone{
				Side:   types.ZoneSideBullish,
				Top:    prev.Open,
				Bottom: prev.Close,
				Index:  i - 1,
			})
		}

		if prev.IsBullish() && curr.IsBearish() && curr.Close < prev.Open {
			zones = append(zones, types.OrderBlockZone{
				Side:   types.ZoneSideBearish,
				Top:    prev.Close,
				Bottom: prev.Open,
				Index:  i - 1,
			})
		}
	}

	for _, zone := range zones {
		if zone.Side == types.ZoneSideBullish {
			bullish[zone.Index] = true
		} else {
			bearish[zone.Index] = true
		}
	}

	return bullish, bearish, zones
}
