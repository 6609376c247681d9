package smc

import "github.com/rxtech-lab/argo-analysis/internal/types"

// FairValueGaps finds three-candle imbalances. A bullish gap exists at
// index i when the candle is bullish and its low sits above the high two
// candles back; the bearish case mirrors it. Each gap produces a zone
// record anchored at i, and the boolean series mark those anchors. Series
// shorter than three candles yield no gaps.
func (d *Detector) FairValueGaps(candles []types.Candle) ([]bool, []bool, []types.GapZone) {
	bullish := make([]bool, len(candles))
	bearish := make([]bool, len(candles))
	zones := []types.GapZone{}

	for i := 2; i < len(candles); i++ {
		curr := candles[i]

		if curr.Low > candles[i-2].High && curr.IsBullish() {
			zones = append(zones, types.GapZone{
				Side:    types.ZoneSideBullish,
				Top:     curr.Low,
				Bottom:  candles[i-2].High,
				Index:   i,
				GapSize: curr.Low - candles[i-2].High,
			})
		}

		if curr.High < candles[i-2].Low && curr.IsBearish() {
			zones = append(zones, types.GapZone{
				Side:    types.ZoneSideBearish,
				Top:     candles[i-2].Low,
				Bottom:  curr.High,
				Index:   i,
				GapSize: candles[i-2].Low - curr.High,
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
