package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/lacvoile/foil-report/internal/adapter/http"
	kafkaadapter "github.com/lacvoile/foil-report/internal/adapter/kafka"
	"github.com/lacvoile/foil-report/internal/config"
	"github.com/lacvoile/foil-report/internal/criteria"
	"github.com/lacvoile/foil-report/internal/linkprobe"
	"github.com/lacvoile/foil-report/internal/observability"
	"github.com/lacvoile/foil-report/internal/pipeline"
	"github.com/lacvoile/foil-report/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	registry, err := criteria.Load(cfg.CriteriaPath)
	if err != nil {
		logger.Error("failed to load criteria", "path", cfg.CriteriaPath, "error", err)
		os.Exit(1)
	}
	logger.Info("criteria loaded", "path", cfg.CriteriaPath, "sites", len(registry.SiteIDs()))

	reports := store.NewMemoryStore()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(registry, reports, metrics, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, reports, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Probe reference links (feature-flagged via LINK_PROBE_ENABLED).
	if cfg.LinkProbeEnabled {
		go probeLinks(ctx, cfg, registry, metrics, logger)
	}

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start scoring pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// probeLinks checks every configured reference link once. Failures are
// logged and counted, never fatal; the links decorate reports, they do not
// gate them.
func probeLinks(ctx context.Context, cfg *config.Config, registry *criteria.Registry, metrics *observability.Metrics, logger *slog.Logger) {
	prober := linkprobe.New(&http.Client{Timeout: cfg.LinkProbeTimeout})

	for _, siteID := range registry.SiteIDs() {
		spot, webcam, station, _ := registry.Links(siteID)
		for kind, link := range map[string]string{
			"spot":    spot,
			"webcam":  webcam,
			"station": station,
		} {
			if link == "" {
				continue
			}
			if err := prober.Check(ctx, link); err != nil {
				metrics.LinkProbes.WithLabelValues("unreachable").Inc()
				logger.Warn("reference link unreachable",
					"site_id", siteID, "kind", kind, "url", link, "error", err)
				continue
			}
			metrics.LinkProbes.WithLabelValues("ok").Inc()
		}
	}
}
