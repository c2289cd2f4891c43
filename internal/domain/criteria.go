package domain

// DirectionBand is an arc of favorable compass degrees, inclusive on both
// ends. Min > Max denotes an arc crossing north, e.g. {320, 40} accepts 355,
// 0, and 5 but rejects 180.
type DirectionBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether a direction in degrees falls inside the arc.
func (b DirectionBand) Contains(deg float64) bool {
	if b.Min <= b.Max {
		return deg >= b.Min && deg <= b.Max
	}
	return deg >= b.Min || deg <= b.Max
}

// Criteria holds one site's scoring thresholds and favorable wind arcs,
// already resolved for the current season. Thresholds are knots.
type Criteria struct {
	SiteID   int
	SiteName string

	WindModerate float64
	WindGood     float64
	WindGreat    float64
	Bands        []DirectionBand

	// Optional reference links, passed through to reports.
	SpotURL    string
	WebcamURL  string
	StationURL string
}

// DirectionFavorable reports whether the direction falls in any favorable arc.
func (c Criteria) DirectionFavorable(deg float64) bool {
	for _, band := range c.Bands {
		if band.Contains(deg) {
			return true
		}
	}
	return false
}
