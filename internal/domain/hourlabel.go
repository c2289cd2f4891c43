package domain

import (
	"regexp"
	"strconv"
)

// hourLabelRe parses Windguru hour labels: "<weekday><day>.<hour>h",
// e.g. "Mo14.13h" -> weekday=Mo, day=14, hour=13.
var hourLabelRe = regexp.MustCompile(`^([A-Za-z]+)(\d+)\.(\d+)h$`)

// weekdayNames expands the abbreviations Windguru uses, in both the English
// and French page locales.
var weekdayNames = map[string]string{
	"Mo": "Monday",
	"Tu": "Tuesday",
	"We": "Wednesday",
	"Th": "Thursday",
	"Fr": "Friday",
	"Sa": "Saturday",
	"Su": "Sunday",
	"Lu": "Monday",
	"Ma": "Tuesday",
	"Me": "Wednesday",
	"Je": "Thursday",
	"Ve": "Friday",
	"Di": "Sunday",
}

// ParseHourLabel splits an hour label into a day heading ("Monday 14") and a
// clock hour. Unknown weekday abbreviations pass through unchanged; labels
// that do not match the pattern return ok=false.
func ParseHourLabel(label string) (day string, hour int, ok bool) {
	matches := hourLabelRe.FindStringSubmatch(label)
	if len(matches) != 4 {
		return "", 0, false
	}

	weekday := matches[1]
	if full, known := weekdayNames[weekday]; known {
		weekday = full
	}

	hour, err := strconv.Atoi(matches[3])
	if err != nil {
		return "", 0, false
	}

	return weekday + " " + matches[2], hour, true
}

// IsNight reports whether an hour label falls in the night window
// (20:00 through 07:59). Unparseable labels count as day.
func IsNight(label string) bool {
	_, hour, ok := ParseHourLabel(label)
	if !ok {
		return false
	}
	return hour >= 20 || hour <= 7
}
