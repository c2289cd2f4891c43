package domain_test

import (
	"testing"

	"github.com/lacvoile/foil-report/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWindColor(t *testing.T) {
	// moderate 9, good 11, great 15: scale runs from 7 to saturation at 21.
	c := testCriteria()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"below the scale", 6.9, ""},
		{"scale start", 7, "rgba(173, 216, 230, 0.30)"},
		{"mid pale blue ramp", 8, "rgba(173, 216, 230, 0.50)"},
		{"moderate is the first blue-to-green sample", 9, "rgb(173, 216, 230)"},
		{"halfway to good", 10, "rgb(111, 210, 140)"},
		{"good is the first green-to-orange sample", 11, "rgb(50, 205, 50)"},
		{"halfway to great", 13, "rgb(152, 185, 25)"},
		{"great is the first orange-to-red sample", 15, "rgb(255, 165, 0)"},
		{"halfway to saturation", 18, "rgb(255, 82, 0)"},
		{"saturation", 21, "rgb(255, 0, 0)"},
		{"beyond saturation stays red", 40, "rgb(255, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.WindColor(c, tt.value))
		})
	}
}

func TestTemperatureColor(t *testing.T) {
	tests := []struct {
		temperature string
		want        string
	}{
		{"-5", "#8B008B"},
		{"0.5", "#8B008B"},
		{"1", "#0000FF"},
		{"9.9", "#0000FF"},
		{"10", "#87CEEB"},
		{"19.9", "#87CEEB"},
		{"20", "#32CD32"},
		{"24.9", "#32CD32"},
		{"25", "#FFA500"},
		{"29.9", "#FFA500"},
		{"30", "#FF8C00"},
		{"34.9", "#FF8C00"},
		{"35", "#FF0000"},
		{"42", "#FF0000"},
		{"", "#000000"},
		{"n/a", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.temperature, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.TemperatureColor(tt.temperature))
		})
	}
}
