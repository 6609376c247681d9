package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) TestDefaultConfig() {
	cfg := DefaultConfig()
	suite.Equal(50, cfg.EMAFastPeriod)
	suite.Equal(200, cfg.EMASlowPeriod)
	suite.Equal(14, cfg.RSIPeriod)
	suite.Equal(14, cfg.ATRPeriod)
}

func (suite *EngineTestSuite) TestComputeShapes() {
	n := 60
	prices := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)

	for i := 0; i < n; i++ {
		prices[i] = 100 + float64(i%7)
		high[i] = prices[i] + 1
		low[i] = prices[i] - 1
		closes[i] = prices[i]
	}

	engine := NewEngine(DefaultConfig())
	result := engine.Compute(prices, high, low, closes)

	suite.Len(result.EMAFast, n)
	suite.Len(result.EMASlow, n)
	suite.Len(result.RSI, n)
	suite.Len(result.ATR, n)

	// 60 points are enough for the fast EMA but not the slow one.
	suite.NotEqual(0.0, result.EMAFast[n-1])
	suite.Equal(0.0, result.EMASlow[n-1])
}

func (suite *EngineTestSuite) TestComputeWithAlternatePeriods() {
	engine := NewEngine(Config{
		EMAFastPeriod: 2,
		EMASlowPeriod: 3,
		RSIPeriod:     2,
		ATRPeriod:     2,
	})

	prices := []float64{1, 2, 3, 4, 5}
	result := engine.Compute(prices, prices, prices, prices)

	suite.NotEqual(0.0, result.EMAFast[4])
	suite.NotEqual(0.0, result.EMASlow[4])
	suite.Equal(100.0, result.RSI[4])
}
