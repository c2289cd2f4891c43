package domain_test

import (
	"testing"

	"github.com/lacvoile/foil-report/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseHourLabel(t *testing.T) {
	tests := []struct {
		label    string
		wantDay  string
		wantHour int
		wantOK   bool
	}{
		{"Mo14.13h", "Monday 14", 13, true},
		{"Tu15.03h", "Tuesday 15", 3, true},
		{"Su20.23h", "Sunday 20", 23, true},
		// French page locale.
		{"Lu14.13h", "Monday 14", 13, true},
		{"Je2.08h", "Thursday 2", 8, true},
		{"Di28.00h", "Sunday 28", 0, true},
		// Unknown weekday abbreviations pass through.
		{"Xx14.13h", "Xx 14", 13, true},
		// Malformed labels.
		{"", "", 0, false},
		{"Mo14.13", "", 0, false},
		{"14.13h", "", 0, false},
		{"Mo.13h", "", 0, false},
		{"Mo14-13h", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			day, hour, ok := domain.ParseHourLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantHour, hour)
		})
	}
}

func TestIsNight(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"Mo14.19h", false},
		{"Mo14.20h", true},
		{"Mo14.23h", true},
		{"Mo15.00h", true},
		{"Mo15.07h", true},
		{"Mo15.08h", false},
		{"Mo15.12h", false},
		// Unparseable labels count as day.
		{"garbage", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsNight(tt.label))
		})
	}
}
