// Package indicator computes smoothed technical indicators over raw price
// series. Every function returns a slice whose length equals the input
// length; positions before an indicator's warm-up requirement carry a zero
// sentinel rather than a distinct "undefined" marker, so callers always get
// a fixed-shape result regardless of how short the input is.
package indicator

// Config holds the smoothing periods used by the Engine.
type Config struct {
	EMAFastPeriod int `yaml:"ema_fast_period" json:"ema_fast_period" jsonschema:"title=Fast EMA Period,description=Period of the fast exponential moving average,minimum=1" validate:"gt=0"`
	EMASlowPeriod int `yaml:"ema_slow_period" json:"ema_slow_period" jsonschema:"title=Slow EMA Period,description=Period of the slow exponential moving average,minimum=1" validate:"gt=0"`
	RSIPeriod     int `yaml:"rsi_period" json:"rsi_period" jsonschema:"title=RSI Period,description=Period of the relative strength index,minimum=1" validate:"gt=0"`
	ATRPeriod     int `yaml:"atr_period" json:"atr_period" jsonschema:"title=ATR Period,description=Period of the average true range,minimum=1" validate:"gt=0"`
}

// DefaultConfig returns the standard 50/200 EMA pair with 14-period RSI and ATR.
func DefaultConfig() Config {
	return Config{
		EMAFastPeriod: 50,
		EMASlowPeriod: 200,
		RSIPeriod:     14,
		ATRPeriod:     14,
	}
}

// Engine computes the configured indicator set over one price series.
type Engine struct {
	config Config
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Result bundles the indicator series computed by Engine.Compute. Each
// slice is index-aligned with the input.
type Result struct {
	EMAFast []float64 `json:"ema_50"`
	EMASlow []float64 `json:"ema_200"`
	RSI     []float64 `json:"rsi_14"`
	ATR     []float64 `json:"atr_14"`
}

// Compute runs all configured indicators. prices drives both EMAs and the
// RSI; high/low/close drive the ATR. The caller guarantees the four slices
// are finite and, for the ATR triple, of equal length.
func (e *Engine) Compute(prices, high, low, closes []float64) Result {
	return Result{
		EMAFast: EMA(prices, e.config.EMAFastPeriod),
		EMASlow: EMA(prices, e.config.EMASlowPeriod),
		RSI:     RSI(prices, e.config.RSIPeriod),
		ATR:     ATR(high, low, closes, e.config.ATRPeriod),
	}
}
