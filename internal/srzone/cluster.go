// Package srzone clusters swing-point levels into ranked support and
// resistance zones around the current price.
package srzone

import (
	"math"
	"sort"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Config holds the clustering parameters.
type Config struct {
	Tolerance  float64 `yaml:"tolerance" json:"tolerance" jsonschema:"title=Tolerance,description=Relative clustering tolerance as a fraction of the seed level,minimum=0" validate:"gt=0"`
	MinTouches int     `yaml:"min_touches" json:"min_touches" jsonschema:"title=Minimum Touches,description=Minimum number of swing levels a zone must contain,minimum=1" validate:"gt=0"`
	MaxZones   int     `yaml:"max_zones" json:"max_zones" jsonschema:"title=Maximum Zones,description=Number of strongest zones kept,minimum=1" validate:"gt=0"`
}

// DefaultConfig returns a 0.2% tolerance, two-touch minimum and five-zone cap.
func DefaultConfig() Config {
	return Config{
		Tolerance:  0.002,
		MinTouches: 2,
		MaxZones:   5,
	}
}

// Clusterer groups swing levels into zones with a fixed configuration.
type Clusterer struct {
	config Config
}

// NewClusterer creates a Clusterer with the given configuration.
func NewClusterer(config Config) *Clusterer {
	return &Clusterer{config: config}
}

// Cluster flattens the swing highs (in index order) followed by the swing
// lows and greedily clusters them. Each unclaimed level seeds a cluster and
// pulls in every other unclaimed level within seed*tolerance of the seed;
// the band never widens as members join, so clustering is deliberately
// non-associative and depends on the flattening order. Clusters below the
// touch minimum are discarded without claiming their members. Survivors are
// ranked by strength, truncated to the configured cap, and only then
// re-sorted by distance to the current price; collapsing the two sorts into
// one comparator would change which zones survive the cut. A level equal to
// the current price classifies as resistance.
func (c *Clusterer) Cluster(swingHighs, swingLows []optional.Option[float64], currentPrice float64) []types.SRZone {
	levels := flattenLevels(swingHighs, swingLows)
	if len(levels) == 0 {
		return []types.SRZone{}
	}

	zones := []types.SRZone{}
	claimed := make([]bool, len(levels))

	for i, seed := range levels {
		if claimed[i] {
			continue
		}

		tolerance := seed * c.config.Tolerance
		cluster := []float64{seed}
		members := []int{i}

		for j := i + 1; j < len(levels); j++ {
			if claimed[j] {
				continue
			}

			if math.Abs(levels[j]-seed) <= tolerance {
				cluster = append(cluster, levels[j])
				members = append(members, j)
			}
		}

		if len(cluster) < c.config.MinTouches {
			continue
		}

		for _, m := range members {
			claimed[m] = true
		}

		zones = append(zones, c.buildZone(cluster, currentPrice))
	}

	sort.SliceStable(zones, func(a, b int) bool {
		return zones[a].Strength > zones[b].Strength
	})

	if len(zones) > c.config.MaxZones {
		zones = zones[:c.config.MaxZones]
	}

	sort.SliceStable(zones, func(a, b int) bool {
		return zones[a].Distance < zones[b].Distance
	})

	return zones
}

// buildZone derives the zone record from a cluster of levels.
func (c *Clusterer) buildZone(cluster []float64, currentPrice float64) types.SRZone {
	sum := 0.0
	top := cluster[0]
	bottom := cluster[0]

	for _, v := range cluster {
		sum += v

		if v > top {
			top = v
		}

		if v < bottom {
			bottom = v
		}
	}

	level := sum / float64(len(cluster))

	kind := types.SRZoneResistance
	if level < currentPrice {
		kind = types.SRZoneSupport
	}

	return types.SRZone{
		Level:    roundToCents(level),
		Kind:     kind,
		Strength: len(cluster),
		Top:      roundToCents(top),
		Bottom:   roundToCents(bottom),
		Distance: math.Abs(currentPrice - level),
	}
}

// flattenLevels concatenates the present swing values, highs before lows,
// each in index order. The order matters: it decides which value seeds each
// cluster.
func flattenLevels(swingHighs, swingLows []optional.Option[float64]) []float64 {
	levels := []float64{}

	for _, v := range swingHighs {
		if v.IsSome() {
			levels = append(levels, v.TakeOr(0))
		}
	}

	for _, v := range swingLows {
		if v.IsSome() {
			levels = append(levels, v.TakeOr(0))
		}
	}

	return levels
}

// roundToCents rounds half away from zero to two decimal places, matching
// the rounding of the price levels consumers display.
func roundToCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
