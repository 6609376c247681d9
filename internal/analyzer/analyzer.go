// Package analyzer wires the analysis components into the three operations
// the service exposes: indicator computation, candlestick pattern detection
// and market structure analysis. Every operation is a pure, synchronous
// function of its input; the Analyzer holds configuration only, so
// concurrent calls need no synchronization.
package analyzer

import (
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/config"
	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/pattern"
	"github.com/rxtech-lab/argo-analysis/internal/smc"
	"github.com/rxtech-lab/argo-analysis/internal/srzone"
	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Analyzer runs the analysis operations with a fixed configuration.
type Analyzer struct {
	indicators *indicator.Engine
	patterns   *pattern.Detector
	structure  *smc.Detector
	zones      *srzone.Clusterer
	log        *logger.Logger
}

// New creates an Analyzer from the service configuration.
func New(cfg config.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		indicators: indicator.NewEngine(cfg.Indicator),
		patterns:   pattern.NewDetector(),
		structure:  smc.NewDetector(cfg.Structure),
		zones:      srzone.NewClusterer(cfg.SRZone),
		log:        log,
	}
}

// ComputeIndicators runs the configured indicator set. prices drives the
// EMAs and RSI; high/low/close drive the ATR.
func (a *Analyzer) ComputeIndicators(prices, high, low, closes []float64) indicator.Result {
	a.log.Debug("computing indicators", zap.Int("points", len(prices)))

	return a.indicators.Compute(prices, high, low, closes)
}

// DetectPatterns runs every candlestick pattern detector over the series.
func (a *Analyzer) DetectPatterns(candles []types.Candle) pattern.Result {
	a.log.Debug("detecting patterns", zap.Int("candles", len(candles)))

	return a.patterns.DetectAll(candles)
}

// StructureResult bundles the market structure analysis output. The swing
// series are index-aligned with the input and null where no pivot was
// confirmed; the boolean series are projections of the zone records.
type StructureResult struct {
	SwingHighs   []optional.Option[float64] `json:"swing_highs"`
	SwingLows    []optional.Option[float64] `json:"swing_lows"`
	FVGBullish   []bool                     `json:"fvg_bullish"`
	FVGBearish   []bool                     `json:"fvg_bearish"`
	OBBullish    []bool                     `json:"ob_bullish"`
	OBBearish    []bool                     `json:"ob_bearish"`
	SweepBullish []bool                     `json:"sweep_bullish"`
	SweepBearish []bool                     `json:"sweep_bearish"`
	FVGZones     []types.GapZone            `json:"fvg_zones"`
	OBZones      []types.OrderBlockZone     `json:"ob_zones"`
	SRZones      []types.SRZone             `json:"sr_zones"`
}

// AnalyzeStructure runs swing, gap, order-block, sweep and SR zone
// detection over the series. The close of the last candle anchors the SR
// zone classification and distance ranking; an empty series yields empty,
// fully-shaped output.
func (a *Analyzer) AnalyzeStructure(candles []types.Candle) StructureResult {
	a.log.Debug("analyzing structure", zap.Int("candles", len(candles)))

	high := make([]float64, len(candles))
	low := make([]float64, len(candles))

	for i, c := range candles {
		high[i] = c.High
		low[i] = c.Low
	}

	swingHighs, swingLows := a.structure.SwingPoints(high, low)
	fvgBullish, fvgBearish, fvgZones := a.structure.FairValueGaps(candles)
	obBullish, obBearish, obZones := a.structure.OrderBlocks(candles)
	sweepBullish, sweepBearish := a.structure.LiquiditySweeps(candles)

	srZones := []types.SRZone{}
	if len(candles) > 0 {
		currentPrice := candles[len(candles)-1].Close
		srZones = a.zones.Cluster(swingHighs, swingLows, currentPrice)
	}

	return StructureResult{
		SwingHighs:   swingHighs,
		SwingLows:    swingLows,
		FVGBullish:   fvgBullish,
		FVGBearish:   fvgBearish,
		OBBullish:    obBullish,
		OBBearish:    obBearish,
		SweepBullish: sweepBullish,
		SweepBearish: sweepBearish,
		FVGZones:     fvgZones,
		OBZones:      obZones,
		SRZones:      srZones,
	}
}
