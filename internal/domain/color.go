package domain

import "fmt"

// Color anchors for the progressive wind scale.
var (
	paleBlue = rgbColor{173, 216, 230}
	green    = rgbColor{50, 205, 50}
	orange   = rgbColor{255, 165, 0}
	red      = rgbColor{255, 0, 0}
)

type rgbColor struct {
	r, g, b int
}

// WindColor maps a knot value onto the site's progressive color scale:
//
//	below moderate-2:       no color
//	moderate-2 .. moderate: pale blue, alpha ramping 0.3 -> 0.7
//	moderate .. good:       pale blue blending to green
//	good .. great:          green blending to orange
//	great .. good+10:       orange blending to red
//	good+10 and above:      solid red
//
// Each band is a half-open interval, so a value exactly at a threshold takes
// the first sample of the band above it. Returns a CSS rgb()/rgba() string,
// or "" when the value is too weak to color.
func WindColor(c Criteria, value float64) string {
	low := c.WindModerate - 2
	saturation := c.WindGood + 10

	switch {
	case value < low:
		return ""
	case value < c.WindModerate:
		ratio := (value - low) / (c.WindModerate - low)
		alpha := 0.3 + ratio*0.4
		return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", paleBlue.r, paleBlue.g, paleBlue.b, alpha)
	case value < c.WindGood:
		return blend(paleBlue, green, (value-c.WindModerate)/(c.WindGood-c.WindModerate))
	case value < c.WindGreat:
		return blend(green, orange, (value-c.WindGood)/(c.WindGreat-c.WindGood))
	case value < saturation:
		return blend(orange, red, (value-c.WindGreat)/(saturation-c.WindGreat))
	default:
		return fmt.Sprintf("rgb(%d, %d, %d)", red.r, red.g, red.b)
	}
}

// blend linearly interpolates between two colors. Channels truncate toward
// zero so threshold values reproduce the band's first sample exactly.
func blend(from, to rgbColor, ratio float64) string {
	r := int(float64(from.r) + ratio*float64(to.r-from.r))
	g := int(float64(from.g) + ratio*float64(to.g-from.g))
	b := int(float64(from.b) + ratio*float64(to.b-from.b))
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// TemperatureColor maps °C onto fixed display bands shared by all sites.
// Unparseable temperatures get black so the cell stays legible.
func TemperatureColor(temperature string) string {
	v, ok := ParseMetric(temperature)
	if !ok {
		return "#000000"
	}

	switch {
	case v < 1:
		return "#8B008B"
	case v < 10:
		return "#0000FF"
	case v < 20:
		return "#87CEEB"
	case v < 25:
		return "#32CD32"
	case v < 30:
		return "#FFA500"
	case v < 35:
		return "#FF8C00"
	default:
		return "#FF0000"
	}
}
