package domain

// Cloud marker kinds.
const (
	CloudMarkerCloud = "cloud"
	CloudMarkerSnow  = "snow"
)

// CloudToken is the renderer-agnostic sky description for one hour: what
// marker to stack, how many, and whether to add a rain drop. A zero token
// means a clear cell.
type CloudToken struct {
	Kind  string `json:"kind,omitempty"`
	Count int    `json:"count,omitempty"`
	Rain  bool   `json:"rain,omitempty"`
}

// SynthesizeClouds reduces the three cloud layers to a single token. The
// densest layer drives the marker count; layers that do not parse count as
// clear. Temperatures below 2°C turn clouds into snow, and snow suppresses
// the rain drop. Under 6% cover the cell stays empty even when rain is
// forecast.
func SynthesizeClouds(high, mid, low, precipitation, temperature string) CloudToken {
	pct := 0.0
	for _, layer := range []string{high, mid, low} {
		if v, ok := ParseMetric(layer); ok && v > pct {
			pct = v
		}
	}

	var count int
	switch {
	case pct < 6:
		return CloudToken{}
	case pct <= 25:
		count = 1
	case pct <= 50:
		count = 2
	case pct <= 75:
		count = 3
	default:
		count = 4
	}

	kind := CloudMarkerCloud
	if temp, ok := ParseMetric(temperature); ok && temp < 2 {
		kind = CloudMarkerSnow
	}

	rain := false
	if precip, ok := ParseMetric(precipitation); ok && precip > 0 && kind != CloudMarkerSnow {
		rain = true
	}

	return CloudToken{Kind: kind, Count: count, Rain: rain}
}
