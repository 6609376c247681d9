package srzone

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

type ClusterTestSuite struct {
	suite.Suite
}

func TestClusterSuite(t *testing.T) {
	suite.Run(t, new(ClusterTestSuite))
}

func levels(values ...float64) []optional.Option[float64] {
	out := make([]optional.Option[float64], len(values))
	for i, v := range values {
		out[i] = optional.Some(v)
	}
	return out
}

func none(n int) []optional.Option[float64] {
	return make([]optional.Option[float64], n)
}

func (suite *ClusterTestSuite) TestSeedBandClustering() {
	clusterer := NewClusterer(DefaultConfig())

	// 100 seeds a band of ±0.2; 100.05 and 100.1 join it, 150 stands
	// alone and is discarded below the two-touch minimum.
	highs := levels(100, 100.05, 100.1, 150)
	zones := clusterer.Cluster(highs, none(4), 120)

	suite.Require().Len(zones, 1)
	suite.Equal(100.05, zones[0].Level)
	suite.Equal(3, zones[0].Strength)
	suite.Equal(100.1, zones[0].Top)
	suite.Equal(100.0, zones[0].Bottom)
	suite.Equal(types.SRZoneSupport, zones[0].Kind)
	suite.InDelta(19.95, zones[0].Distance, 1e-9)
}

func (suite *ClusterTestSuite) TestBandFixedBySeedNotByMembers() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 1, MaxZones: 5})

	// 100.15 is within 100's band; 100.3 is within 100.15's band but
	// not 100's, so it must seed its own cluster.
	highs := levels(100, 100.15, 100.3)
	zones := clusterer.Cluster(highs, none(3), 120)

	suite.Require().Len(zones, 2)

	strengths := []int{zones[0].Strength, zones[1].Strength}
	suite.ElementsMatch([]int{2, 1}, strengths)
}

func (suite *ClusterTestSuite) TestWeakClusterDoesNotClaimMembers() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 3, MaxZones: 5})

	// The first seed gathers only 100.18 and fails the three-touch
	// minimum; 100.18 must stay available to seed the next cluster.
	highs := levels(100, 100.18, 100.3, 100.32)
	zones := clusterer.Cluster(highs, none(4), 120)

	suite.Require().Len(zones, 1)
	suite.Equal(3, zones[0].Strength)
	suite.Equal(100.27, zones[0].Level)
}

func (suite *ClusterTestSuite) TestStrengthCutBeforeDistanceSort() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 2, MaxZones: 1})

	// The near zone around 119 has two touches; the far zone around 100
	// has three. The cap keeps the strongest, not the nearest.
	highs := levels(100, 100.1, 100.05, 119, 119.1)
	zones := clusterer.Cluster(highs, none(5), 120)

	suite.Require().Len(zones, 1)
	suite.Equal(3, zones[0].Strength)
	suite.Equal(100.05, zones[0].Level)
}

func (suite *ClusterTestSuite) TestSurvivorsOrderedByDistance() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 2, MaxZones: 5})

	highs := levels(100, 100.1, 130, 130.1)
	zones := clusterer.Cluster(highs, none(4), 125)

	suite.Require().Len(zones, 2)
	suite.Equal(130.05, zones[0].Level)
	suite.Equal(100.05, zones[1].Level)
	suite.Less(zones[0].Distance, zones[1].Distance)
}

func (suite *ClusterTestSuite) TestLevelEqualToPriceIsResistance() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 1, MaxZones: 5})

	highs := levels(100, 100)
	zones := clusterer.Cluster(highs, none(2), 100)

	suite.Require().Len(zones, 1)
	suite.Equal(types.SRZoneResistance, zones[0].Kind)
}

func (suite *ClusterTestSuite) TestRoundingHalfAwayFromZero() {
	clusterer := NewClusterer(Config{Tolerance: 0.01, MinTouches: 2, MaxZones: 5})

	// Mean of 100.0 and 100.25 is exactly 100.125, which rounds up to
	// 100.13 rather than to even.
	highs := levels(100.0, 100.25)
	zones := clusterer.Cluster(highs, none(2), 120)

	suite.Require().Len(zones, 1)
	suite.Equal(100.13, zones[0].Level)
}

func (suite *ClusterTestSuite) TestHighsFlattenBeforeLows() {
	clusterer := NewClusterer(Config{Tolerance: 0.002, MinTouches: 2, MaxZones: 5})

	// The swing low joins the cluster seeded by the swing high.
	highs := levels(100.1)
	lows := levels(100.0)
	zones := clusterer.Cluster(highs, lows, 120)

	suite.Require().Len(zones, 1)
	suite.Equal(2, zones[0].Strength)
	suite.Equal(100.05, zones[0].Level)
}

func (suite *ClusterTestSuite) TestEmptyInput() {
	clusterer := NewClusterer(DefaultConfig())

	zones := clusterer.Cluster(none(5), none(5), 100)
	suite.Empty(zones)

	zones = clusterer.Cluster(nil, nil, 100)
	suite.Empty(zones)
}
