package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lacvoile/foil-report/internal/domain"
	"github.com/lacvoile/foil-report/internal/observability"
)

// CriteriaSource resolves the criteria in effect for a site and month.
type CriteriaSource interface {
	For(siteID int, month time.Month) (domain.Criteria, bool)
}

// ReportSink receives each built report besides the pipeline loader,
// typically the in-memory store behind the HTTP report endpoint.
type ReportSink interface {
	Save(report domain.SiteReport)
}

// ReportTransformer turns raw site bundles into serialized scored reports.
type ReportTransformer struct {
	criteria CriteriaSource
	sink     ReportSink
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewTransformer creates a ReportTransformer. Pass a nil sink when no local
// report cache is wanted.
func NewTransformer(criteria CriteriaSource, sink ReportSink, metrics *observability.Metrics, logger *slog.Logger) *ReportTransformer {
	return &ReportTransformer{
		criteria: criteria,
		sink:     sink,
		metrics:  metrics,
		logger:   logger,
	}
}

// Transform parses a bundle, scores it against the site's current-season
// criteria, caches the report, and serializes it for the sink topic. Bundles
// for unconfigured sites are an error so the pipeline skips and counts them.
func (t *ReportTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	bundle, err := domain.ParseBundle(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	month := domain.Now().UTC().Month()
	criteria, ok := t.criteria.For(bundle.SiteID, month)
	if !ok {
		return domain.OutputEvent{}, fmt.Errorf("no criteria configured for site %d", bundle.SiteID)
	}

	report := domain.BuildReport(criteria, bundle)
	t.observeHours(report)

	if t.sink != nil {
		t.sink.Save(report)
	}

	t.logger.Debug("bundle scored",
		"site_id", report.SiteID,
		"hours", len(report.Hours),
	)

	return domain.SerializeReport(report)
}

func (t *ReportTransformer) observeHours(report domain.SiteReport) {
	for _, hour := range report.Hours {
		if hour.Rated {
			t.metrics.HoursScored.WithLabelValues("rated").Inc()
			t.metrics.StarsAwarded.Observe(float64(hour.Stars))
		} else {
			t.metrics.HoursScored.WithLabelValues("unrated").Inc()
		}
	}
}
