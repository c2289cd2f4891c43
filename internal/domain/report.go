package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ScoredHour is one fused forecast hour after scoring and color encoding.
// Raw metric strings are carried unchanged so renderers show exactly what
// Windguru showed.
type ScoredHour struct {
	Label  string `json:"label"`
	Day    string `json:"day,omitempty"`
	Hour   int    `json:"hour"`
	Night  bool   `json:"night"`
	Source string `json:"source"`

	Wind          string `json:"wind"`
	Gust          string `json:"gust"`
	Direction     string `json:"direction"`
	Temperature   string `json:"temperature"`
	Precipitation string `json:"precipitation"`

	DirectionFavorable bool `json:"direction_favorable"`
	Stars              int  `json:"stars"`
	Rated              bool `json:"rated"`

	WindColor        string     `json:"wind_color,omitempty"`
	GustColor        string     `json:"gust_color,omitempty"`
	TemperatureColor string     `json:"temperature_color"`
	Clouds           CloudToken `json:"clouds"`
}

// SiteReport is the scored forecast for one site, ready for rendering.
type SiteReport struct {
	SiteID   int    `json:"site_id"`
	SiteName string `json:"site_name"`

	SpotURL    string `json:"spot_url,omitempty"`
	WebcamURL  string `json:"webcam_url,omitempty"`
	StationURL string `json:"station_url,omitempty"`

	UpdateTimePrimary   string `json:"update_time_primary,omitempty"`
	UpdateTimeSecondary string `json:"update_time_secondary,omitempty"`

	GeneratedAt time.Time    `json:"generated_at"`
	Hours       []ScoredHour `json:"hours"`
}

// BuildReport fuses a bundle's model series and scores every hour against
// the site criteria. Wind and gust cell colors are withheld when the hour's
// direction is unfavorable or unparseable; the rating carries its own
// validity flag instead.
func BuildReport(c Criteria, bundle SiteBundle) SiteReport {
	fused := FuseBundle(bundle)

	siteName := bundle.SiteName
	if siteName == "" {
		siteName = c.SiteName
	}

	hours := make([]ScoredHour, fused.Len())
	for i, label := range fused.Hours {
		wind := fused.Wind[i]
		gust := fused.Gust[i]
		direction := fused.Direction[i]
		temperature := fused.Temperature[i]
		precipitation := fused.Precipitation[i]

		day, hour, _ := ParseHourLabel(label)

		dirVal, dirOK := ParseMetric(direction)
		favorable := dirOK && c.DirectionFavorable(dirVal)

		stars, rated := Rate(c, wind, gust, direction, label, precipitation, temperature)

		var windColor, gustColor string
		if favorable {
			if v, ok := ParseMetric(wind); ok {
				windColor = WindColor(c, v)
			}
			if v, ok := ParseMetric(gust); ok {
				gustColor = WindColor(c, v)
			}
		}

		hours[i] = ScoredHour{
			Label:  label,
			Day:    day,
			Hour:   hour,
			Night:  IsNight(label),
			Source: fused.Source[i],

			Wind:          wind,
			Gust:          gust,
			Direction:     direction,
			Temperature:   temperature,
			Precipitation: precipitation,

			DirectionFavorable: favorable,
			Stars:              stars,
			Rated:              rated,

			WindColor:        windColor,
			GustColor:        gustColor,
			TemperatureColor: TemperatureColor(temperature),
			Clouds:           SynthesizeClouds(fused.CloudHigh[i], fused.CloudMid[i], fused.CloudLow[i], precipitation, temperature),
		}
	}

	return SiteReport{
		SiteID:   bundle.SiteID,
		SiteName: siteName,

		SpotURL:    c.SpotURL,
		WebcamURL:  c.WebcamURL,
		StationURL: c.StationURL,

		UpdateTimePrimary:   fused.UpdateTimePrimary,
		UpdateTimeSecondary: fused.UpdateTimeSecondary,

		GeneratedAt: clock.Now().UTC(),
		Hours:       hours,
	}
}

// SerializeReport marshals a SiteReport into an OutputEvent keyed by site id.
func SerializeReport(report SiteReport) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize site report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(strconv.Itoa(report.SiteID)),
		Value: data,
		Headers: map[string]string{
			"site_id":      strconv.Itoa(report.SiteID),
			"generated_at": report.GeneratedAt.Format(time.RFC3339),
		},
	}, nil
}
