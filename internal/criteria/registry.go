// Package criteria loads and validates per-site scoring criteria from a JSON
// file and resolves the active criteria for a site and month. Sites with
// seasonal regimes (thermal lakes mostly) carry override blocks keyed by
// month windows; everything else uses its base block year-round.
package criteria

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lacvoile/foil-report/internal/domain"
)

// File is the top-level shape of the criteria JSON file.
type File struct {
	Sites []SiteConfig `json:"sites" validate:"required,min=1,dive"`
}

// SiteConfig is one site's entry: identity, base criteria, optional
// reference links, and optional seasonal overrides.
type SiteConfig struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`

	Thresholds

	DirectionBands []BandConfig `json:"direction_bands" validate:"required,min=1,dive"`

	SpotURL    string `json:"spot_url,omitempty"`
	WebcamURL  string `json:"webcam_url,omitempty"`
	StationURL string `json:"station_url,omitempty"`

	Seasons []SeasonConfig `json:"seasons,omitempty" validate:"dive"`
}

// Thresholds are the site's wind grades in knots.
type Thresholds struct {
	WindModerate int `json:"wind_moderate" validate:"required,gt=0"`
	WindGood     int `json:"wind_good" validate:"required,gt=0"`
	WindGreat    int `json:"wind_great" validate:"required,gt=0"`
}

// BandConfig is a favorable direction arc in compass degrees. Min > Max
// denotes an arc crossing north.
type BandConfig struct {
	Min int `json:"min" validate:"gte=0,lt=360"`
	Max int `json:"max" validate:"gte=0,lt=360"`
}

// SeasonConfig replaces the base thresholds (and optionally the bands) for
// the named months.
type SeasonConfig struct {
	Months []int `json:"months" validate:"required,min=1,dive,gte=1,lte=12"`

	Thresholds

	DirectionBands []BandConfig `json:"direction_bands,omitempty" validate:"dive"`
}

// Registry holds the validated criteria for all configured sites. It is
// built once at startup and read-only afterwards, so lookups need no lock.
type Registry struct {
	sites map[int]SiteConfig
	order []int
}

// Load reads and validates the criteria file at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria file: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("criteria file %s: %w", path, err)
	}
	return reg, nil
}

// Parse validates raw criteria JSON and builds a Registry. Any invalid
// record fails the whole load; a service scoring against half-validated
// criteria is worse than one that refuses to start.
func Parse(data []byte) (*Registry, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse criteria: %w", err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validate criteria: %w", err)
	}

	sites := make(map[int]SiteConfig, len(file.Sites))
	order := make([]int, 0, len(file.Sites))
	for _, site := range file.Sites {
		if _, dup := sites[site.ID]; dup {
			return nil, fmt.Errorf("site %d: duplicate entry", site.ID)
		}
		if err := checkSite(site); err != nil {
			return nil, err
		}
		sites[site.ID] = site
		order = append(order, site.ID)
	}

	return &Registry{sites: sites, order: order}, nil
}

// For resolves the criteria in effect for a site in the given month: the
// seasonal override claiming the month if any, else the base block.
// ok is false for unknown sites.
func (r *Registry) For(siteID int, month time.Month) (domain.Criteria, bool) {
	site, ok := r.sites[siteID]
	if !ok {
		return domain.Criteria{}, false
	}

	thresholds := site.Thresholds
	bands := site.DirectionBands
	for _, season := range site.Seasons {
		if !containsMonth(season.Months, month) {
			continue
		}
		thresholds = season.Thresholds
		if len(season.DirectionBands) > 0 {
			bands = season.DirectionBands
		}
		break
	}

	c := domain.Criteria{
		SiteID:   site.ID,
		SiteName: site.Name,

		WindModerate: float64(thresholds.WindModerate),
		WindGood:     float64(thresholds.WindGood),
		WindGreat:    float64(thresholds.WindGreat),

		SpotURL:    site.SpotURL,
		WebcamURL:  site.WebcamURL,
		StationURL: site.StationURL,
	}
	c.Bands = make([]domain.DirectionBand, len(bands))
	for i, b := range bands {
		c.Bands[i] = domain.DirectionBand{Min: float64(b.Min), Max: float64(b.Max)}
	}
	return c, true
}

// SiteIDs returns the configured site ids in file order.
func (r *Registry) SiteIDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}

// Links returns a site's reference links. Empty strings mean no link.
func (r *Registry) Links(siteID int) (spot, webcam, station string, ok bool) {
	site, found := r.sites[siteID]
	if !found {
		return "", "", "", false
	}
	return site.SpotURL, site.WebcamURL, site.StationURL, true
}

var validate = validator.New()

// checkSite enforces the cross-field rules validator tags cannot express:
// strictly increasing thresholds, well-formed links, and disjoint seasons.
func checkSite(site SiteConfig) error {
	if err := checkThresholds(site.ID, site.Thresholds); err != nil {
		return err
	}

	for field, link := range map[string]string{
		"spot_url":    site.SpotURL,
		"webcam_url":  site.WebcamURL,
		"station_url": site.StationURL,
	} {
		if err := checkLink(link); err != nil {
			return fmt.Errorf("site %d: %s: %w", site.ID, field, err)
		}
	}

	claimed := make(map[int]bool)
	for _, season := range site.Seasons {
		if err := checkThresholds(site.ID, season.Thresholds); err != nil {
			return err
		}
		for _, m := range season.Months {
			if claimed[m] {
				return fmt.Errorf("site %d: month %d claimed by two seasons", site.ID, m)
			}
			claimed[m] = true
		}
	}

	return nil
}

func checkThresholds(siteID int, t Thresholds) error {
	if t.WindModerate >= t.WindGood || t.WindGood >= t.WindGreat {
		return fmt.Errorf("site %d: wind thresholds must be strictly increasing (moderate=%d good=%d great=%d)",
			siteID, t.WindModerate, t.WindGood, t.WindGreat)
	}
	return nil
}

func checkLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) url, got %q", link)
	}
	return nil
}

func containsMonth(months []int, month time.Month) bool {
	for _, m := range months {
		if time.Month(m) == month {
			return true
		}
	}
	return false
}
