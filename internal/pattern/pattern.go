// Package pattern detects single- and multi-candle reversal shapes over a
// chronological candle series. Every detector returns a boolean slice the
// same length as its input; indices without enough preceding candles for a
// pattern stay false rather than producing an error.
package pattern

import "github.com/rxtech-lab/argo-analysis/internal/types"

// Shape thresholds shared by the single-candle detectors.
const (
	wickDominanceRatio = 2.0  // wick must exceed twice the body
	wickToleranceRatio = 0.5  // opposite wick must stay under half the body
	dojiBodyRatio      = 0.05 // doji body relative to the full range
	dojiWickRatio      = 0.7  // dominant doji wick relative to the full range
	starBodyRatio      = 0.3  // middle star candle body relative to its range
)

// Detector runs the candlestick pattern heuristics.
type Detector struct{}

// NewDetector creates a pattern Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Result holds one index-aligned boolean series per pattern.
type Result struct {
	Hammer           []bool `json:"hammer"`
	InvertedHammer   []bool `json:"inverted_hammer"`
	HangingMan       []bool `json:"hanging_man"`
	BullishEngulfing []bool `json:"bullish_engulfing"`
	BearishEngulfing []bool `json:"bearish_engulfing"`
	DragonflyDoji    []bool `json:"dragonfly_doji"`
	GravestoneDoji   []bool `json:"gravestone_doji"`
	MorningStar      []bool `json:"morning_star"`
	EveningStar      []bool `json:"evening_star"`
}

// DetectAll runs every pattern detector over the series.
func (d *Detector) DetectAll(candles []types.Candle) Result {
	return Result{
		Hammer:           d.Hammer(candles),
		InvertedHammer:   d.InvertedHammer(candles),
		HangingMan:       d.HangingMan(candles),
		BullishEngulfing: d.BullishEngulfing(candles),
		BearishEngulfing: d.BearishEngulfing(candles),
		DragonflyDoji:    d.DragonflyDoji(candles),
		GravestoneDoji:   d.GravestoneDoji(candles),
		MorningStar:      d.MorningStar(candles),
		EveningStar:      d.EveningStar(candles),
	}
}
