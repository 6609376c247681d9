package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EMATestSuite struct {
	suite.Suite
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) TestShortSeriesIsAllZero() {
	result := EMA([]float64{10, 11}, 3)
	suite.Equal([]float64{0, 0}, result)
}

func (suite *EMATestSuite) TestEmptySeries() {
	result := EMA([]float64{}, 3)
	suite.Empty(result)
	suite.NotNil(result)
}

func (suite *EMATestSuite) TestSeedIsSimpleAverage() {
	// Seed at index period-1 is the SMA of the first period prices.
	result := EMA([]float64{1, 2, 3}, 3)
	suite.Equal([]float64{0, 0, 2}, result)
}

func (suite *EMATestSuite) TestRecursiveForm() {
	// period 3 -> multiplier 0.5; seed 2, then (4-2)*0.5+2=3, (5-3)*0.5+3=4.
	result := EMA([]float64{1, 2, 3, 4, 5}, 3)
	suite.Equal([]float64{0, 0, 2, 3, 4}, result)
}

func (suite *EMATestSuite) TestOutputLengthMatchesInput() {
	for _, n := range []int{0, 1, 5, 50, 251} {
		prices := make([]float64, n)
		for i := range prices {
			prices[i] = float64(i) + 1
		}

		suite.Len(EMA(prices, 50), n)
	}
}

func (suite *EMATestSuite) TestConstantSeriesStaysConstant() {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 42.5
	}

	result := EMA(prices, 5)
	for i := 4; i < len(result); i++ {
		suite.InDelta(42.5, result[i], 1e-12)
	}
}
