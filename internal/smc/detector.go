// Package smc detects smart-money structures over a candle series: swing
// pivots, fair value gaps, order blocks and liquidity sweeps. The zone
// records are the source of truth for gap and order-block detection; the
// boolean flag series are projections derived from them by marking each
// zone's anchor index. All detectors are pure functions of their input and
// degrade to empty/false output when the series is shorter than the window
// a detection requires.
package smc

// Config holds the window parameters for structure detection.
type Config struct {
	PivotLegs     int `yaml:"pivot_legs" json:"pivot_legs" jsonschema:"title=Pivot Legs,description=Half-width of the swing pivot window,minimum=1" validate:"gt=0"`
	SweepLookback int `yaml:"sweep_lookback" json:"sweep_lookback" jsonschema:"title=Sweep Lookback,description=Number of candles in the liquidity sweep rolling window,minimum=1" validate:"gt=0"`
}

// DefaultConfig returns 5-leg pivots and a 20-candle sweep lookback.
func DefaultConfig() Config {
	return Config{
		PivotLegs:     5,
		SweepLookback: 20,
	}
}

// Detector runs the structure detections with a fixed configuration.
type Detector struct {
	config Config
}

// NewDetector creates a Detector with the given configuration.
func NewDetector(config Config) *Detector {
	return &Detector{config: config}
}
