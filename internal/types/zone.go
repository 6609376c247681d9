package types

// ZoneSide is the direction of a structural zone.
type ZoneSide string

const (
	ZoneSideBullish ZoneSide = "bullish"
	ZoneSideBearish ZoneSide = "bearish"
)

// SRZoneKind classifies a support/resistance zone relative to the current price.
type SRZoneKind string

const (
	SRZoneSupport    SRZoneKind = "support"
	SRZoneResistance SRZoneKind = "resistance"
)

// GapZone is a fair value gap: a three-candle imbalance anchored at the
// candle that completed it. Top is always >= Bottom.
type GapZone struct {
	Side    ZoneSide `json:"zone_type"`
	Top     float64  `json:"top"`
	Bottom  float64  `json:"bottom"`
	Index   int      `json:"index"`
	GapSize float64  `json:"gap_size"`
}

// OrderBlockZone is the body of the last opposing candle preceding a
// directional engulf, anchored at that opposing candle. Top is always >= Bottom.
type OrderBlockZone struct {
	Side   ZoneSide `json:"zone_type"`
	Top    float64  `json:"top"`
	Bottom float64  `json:"bottom"`
	Index  int      `json:"index"`
}

// SRZone is a clustered band of swing levels acting as support or
// resistance. Level, Top and Bottom are rounded to two decimal places.
type SRZone struct {
	Level    float64    `json:"level"`
	Kind     SRZoneKind `json:"zone_type"`
	Strength int        `json:"strength"`
	Top      float64    `json:"top"`
	Bottom   float64    `json:"bottom"`
	Distance float64    `json:"distance"`
}
