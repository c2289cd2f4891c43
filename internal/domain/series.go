package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Model names as they appear in Windguru forecast tables.
const (
	ModelPrimary   = "AROME 1.3km"
	ModelSecondary = "WG"
)

// RawModelSeries is one model's hourly forecast for a site, column-per-hour.
// All metric slices are parallel to Hours; values stay raw strings because
// the site leaves cells blank and blanks must survive to the renderer.
type RawModelSeries struct {
	Model         string   `json:"model"`
	UpdateTime    string   `json:"update_time"`
	Hours         []string `json:"hours"`
	Wind          []string `json:"wind"`           // knots
	Gust          []string `json:"gust"`           // knots
	Direction     []string `json:"direction"`      // compass degrees
	Temperature   []string `json:"temperature"`    // °C
	CloudHigh     []string `json:"cloud_high"`     // percent
	CloudMid      []string `json:"cloud_mid"`      // percent
	CloudLow      []string `json:"cloud_low"`      // percent
	Precipitation []string `json:"precipitation"`  // mm/1h
}

// SiteBundle is the flat JSON structure produced by the collector: one spot
// with whatever model series the scrape yielded (zero, one, or two).
type SiteBundle struct {
	SiteID   int              `json:"site_id"`
	SiteName string           `json:"site_name,omitempty"`
	Series   []RawModelSeries `json:"series"`
}

// SeriesFor returns the bundle's series for the named model, or a zero
// series when the model is absent.
func (b SiteBundle) SeriesFor(model string) RawModelSeries {
	for _, s := range b.Series {
		if s.Model == model {
			return s
		}
	}
	return RawModelSeries{}
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// ParseBundle deserializes a RawEvent's value into a SiteBundle.
func ParseBundle(raw RawEvent) (SiteBundle, error) {
	var bundle SiteBundle
	if err := json.Unmarshal(raw.Value, &bundle); err != nil {
		return SiteBundle{}, fmt.Errorf("parse site bundle: %w", err)
	}
	if bundle.SiteID <= 0 {
		return SiteBundle{}, fmt.Errorf("parse site bundle: missing or invalid site_id")
	}
	return bundle, nil
}
