package pattern

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

type SinglePatternTestSuite struct {
	suite.Suite
	detector *Detector
}

func (suite *SinglePatternTestSuite) SetupTest() {
	suite.detector = NewDetector()
}

func TestSinglePatternSuite(t *testing.T) {
	suite.Run(t, new(SinglePatternTestSuite))
}

func (suite *SinglePatternTestSuite) TestHammer() {
	// body 0.4, lower wick 1.0 > 0.8, upper wick 0.1 < 0.2.
	candles := []types.Candle{{Open: 10, High: 10.5, Low: 9.0, Close: 10.4}}

	suite.Equal([]bool{true}, suite.detector.Hammer(candles))
}

func (suite *SinglePatternTestSuite) TestHammerRejectsLongUpperWick() {
	candles := []types.Candle{{Open: 10, High: 11.5, Low: 9.0, Close: 10.4}}

	suite.Equal([]bool{false}, suite.detector.Hammer(candles))
}

func (suite *SinglePatternTestSuite) TestInvertedHammer() {
	// Mirror of the hammer case.
	candles := []types.Candle{{Open: 10.4, High: 11.4, Low: 9.9, Close: 10}}

	suite.Equal([]bool{true}, suite.detector.InvertedHammer(candles))
	suite.Equal([]bool{false}, suite.detector.Hammer(candles))
}

func (suite *SinglePatternTestSuite) TestHangingManMatchesHammer() {
	candles := []types.Candle{
		{Open: 10, High: 10.5, Low: 9.0, Close: 10.4},
		{Open: 10, High: 11.5, Low: 9.0, Close: 10.4},
		{Open: 5, High: 5, Low: 5, Close: 5},
	}

	suite.Equal(suite.detector.Hammer(candles), suite.detector.HangingMan(candles))
}

func (suite *SinglePatternTestSuite) TestDragonflyDoji() {
	// body 0.01 < 0.051, lower wick 1.0 > 0.714, upper wick 0.01 < 0.051.
	candles := []types.Candle{{Open: 10, High: 10.02, Low: 9.0, Close: 10.01}}

	suite.Equal([]bool{true}, suite.detector.DragonflyDoji(candles))
	suite.Equal([]bool{false}, suite.detector.GravestoneDoji(candles))
}

func (suite *SinglePatternTestSuite) TestGravestoneDoji() {
	candles := []types.Candle{{Open: 10, High: 11.0, Low: 10.0, Close: 10.01}}

	suite.Equal([]bool{true}, suite.detector.GravestoneDoji(candles))
	suite.Equal([]bool{false}, suite.detector.DragonflyDoji(candles))
}

func (suite *SinglePatternTestSuite) TestZeroRangeCandleNeverFires() {
	candles := []types.Candle{{Open: 10, High: 10, Low: 10, Close: 10}}

	suite.Equal([]bool{false}, suite.detector.Hammer(candles))
	suite.Equal([]bool{false}, suite.detector.InvertedHammer(candles))
	suite.Equal([]bool{false}, suite.detector.HangingMan(candles))
	suite.Equal([]bool{false}, suite.detector.DragonflyDoji(candles))
	suite.Equal([]bool{false}, suite.detector.GravestoneDoji(candles))
}

func (suite *SinglePatternTestSuite) TestEmptySeries() {
	suite.Empty(suite.detector.Hammer(nil))
	suite.Empty(suite.detector.DragonflyDoji(nil))
}
