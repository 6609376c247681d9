package server

import (
	"math"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// IndicatorRequest is the body of POST /calculate/indicators. prices drives
// the EMAs and RSI; high/low/close drive the ATR and must share one length.
type IndicatorRequest struct {
	Prices []float64 `json:"prices"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
}

// Validate enforces the input-shape contract the analysis core assumes:
// parallel arrays of one length, finite values only.
func (r *IndicatorRequest) Validate() error {
	if len(r.High) != len(r.Low) || len(r.High) != len(r.Close) {
		return errors.Newf(errors.ErrCodeLengthMismatch,
			"high, low and close must have equal lengths, got %d/%d/%d",
			len(r.High), len(r.Low), len(r.Close))
	}

	for name, series := range map[string][]float64{
		"prices": r.Prices,
		"high":   r.High,
		"low":    r.Low,
		"close":  r.Close,
	} {
		if err := validateFinite(name, series); err != nil {
			return err
		}
	}

	return nil
}

// CandleRequest is the body of POST /detect/patterns and
// POST /analyze/structure.
type CandleRequest struct {
	OHLC []types.Candle `json:"ohlc"`
}

// Validate enforces finiteness of every candle field.
func (r *CandleRequest) Validate() error {
	for i, c := range r.OHLC {
		for _, v := range [4]float64{c.Open, c.High, c.Low, c.Close} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Newf(errors.ErrCodeNonFiniteValue, "candle %d contains a non-finite value", i)
			}
		}
	}

	return nil
}

func validateFinite(name string, series []float64) error {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Newf(errors.ErrCodeNonFiniteValue, "%s[%d] is not finite", name, i)
		}
	}

	return nil
}
