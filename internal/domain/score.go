package domain

import (
	"strconv"
	"strings"
)

// Rate computes the 0-3 star rating for one forecast hour as the product of
// five factors:
//
//	A: wind quality 0-3 against the site thresholds (see windFactor)
//	B: 1 when the direction falls in a favorable arc
//	C: 1 during the day, 0 in the night window
//	D: 1 when precipitation is zero
//	E: 1 when temperature >= 5°C
//
// ok is false when wind, gust, direction, temperature, or precipitation
// fails to parse; the hour then has no rating, which is not the same as
// zero stars.
func Rate(c Criteria, wind, gust, direction, label, precipitation, temperature string) (stars int, ok bool) {
	windVal, okW := ParseMetric(wind)
	gustVal, okG := ParseMetric(gust)
	dirVal, okD := ParseMetric(direction)
	tempVal, okT := ParseMetric(temperature)
	precipVal, okP := ParseMetric(precipitation)
	if !okW || !okG || !okD || !okT || !okP {
		return 0, false
	}

	a := windFactor(c, windVal, gustVal)

	b := 0
	if c.DirectionFavorable(dirVal) {
		b = 1
	}

	day := 1
	if IsNight(label) {
		day = 0
	}

	dry := 0
	if precipVal == 0 {
		dry = 1
	}

	warm := 0
	if tempVal >= 5 {
		warm = 1
	}

	stars = a * b * day * dry * warm
	if stars > 3 {
		stars = 3
	}
	return stars, true
}

// windFactor grades sustained wind against the site thresholds, letting
// gusts qualify or disqualify the middle tiers:
//
//	3: wind at or above great
//	2: wind at or above good with gusts reaching great
//	1: wind at or above moderate with gusts beyond good, or
//	   wind at or above good with gusts below great
//	0: anything weaker
func windFactor(c Criteria, wind, gust float64) int {
	switch {
	case wind >= c.WindGreat:
		return 3
	case wind >= c.WindGood && gust >= c.WindGreat:
		return 2
	case (wind >= c.WindModerate && gust > c.WindGood) || (wind >= c.WindGood && gust < c.WindGreat):
		return 1
	default:
		return 0
	}
}

// ParseMetric parses a raw forecast cell. Blank cells and non-numeric text
// both report ok=false; callers decide whether that voids the computation
// or just a cosmetic detail.
func ParseMetric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
