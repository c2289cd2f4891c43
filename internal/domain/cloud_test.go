package domain_test

import (
	"testing"

	"github.com/lacvoile/foil-report/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeClouds(t *testing.T) {
	tests := []struct {
		name             string
		high, mid, low   string
		precipitation    string
		temperature      string
		want             domain.CloudToken
	}{
		{
			name: "clear sky",
			high: "0", mid: "0", low: "0", precipitation: "0", temperature: "15",
			want: domain.CloudToken{},
		},
		{
			name: "under six percent stays empty even with rain",
			high: "5", mid: "3", low: "0", precipitation: "0.8", temperature: "15",
			want: domain.CloudToken{},
		},
		{
			name: "light cover",
			high: "6", mid: "0", low: "0", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 1},
		},
		{
			name: "densest layer wins",
			high: "10", mid: "60", low: "20", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 3},
		},
		{
			name: "band upper bounds are inclusive",
			high: "25", mid: "0", low: "0", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 1},
		},
		{
			name: "just past a band boundary",
			high: "26", mid: "0", low: "0", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 2},
		},
		{
			name: "overcast",
			high: "0", mid: "0", low: "100", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 4},
		},
		{
			name: "rain drop added when precipitation is forecast",
			high: "80", mid: "0", low: "0", precipitation: "1.2", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 4, Rain: true},
		},
		{
			name: "cold clouds become snow and suppress the rain drop",
			high: "80", mid: "0", low: "0", precipitation: "1.2", temperature: "1.9",
			want: domain.CloudToken{Kind: domain.CloudMarkerSnow, Count: 4},
		},
		{
			name: "two degrees is still rain",
			high: "80", mid: "0", low: "0", precipitation: "1.2", temperature: "2",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 4, Rain: true},
		},
		{
			name: "unparseable layers count as clear",
			high: "", mid: "n/a", low: "30", precipitation: "0", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 2},
		},
		{
			name: "unparseable precipitation adds no rain drop",
			high: "80", mid: "0", low: "0", precipitation: "", temperature: "15",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 4},
		},
		{
			name: "unparseable temperature stays a cloud",
			high: "80", mid: "0", low: "0", precipitation: "1.2", temperature: "",
			want: domain.CloudToken{Kind: domain.CloudMarkerCloud, Count: 4, Rain: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SynthesizeClouds(tt.high, tt.mid, tt.low, tt.precipitation, tt.temperature)
			assert.Equal(t, tt.want, got)
		})
	}
}
