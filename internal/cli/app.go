package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/gcbaptista/court-finder/config"
	"github.com/gcbaptista/court-finder/internal/analytics"
	"github.com/gcbaptista/court-finder/internal/catalog"
	"github.com/gcbaptista/court-finder/internal/courts"
	"github.com/gcbaptista/court-finder/internal/logger"
	"github.com/gcbaptista/court-finder/internal/metrics"
	"github.com/gcbaptista/court-finder/store"
)

// app is the wired object graph shared by every command.
type app struct {
	settings  *config.Settings
	logger    *zap.Logger
	store     *store.CourtStore
	courts    *courts.Service
	analytics *analytics.Service
	metrics   *metrics.Collectors
	registry  *prometheus.Registry
}

// newApp loads settings and the catalog and builds the court service.
// Interactive commands own the terminal, so their logging is discarded.
func newApp(path string, interactive bool) (*app, error) {
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(settings.Logging.Env, settings.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if interactive {
		log = zap.NewNop()
	}

	cat, err := loadCatalog(settings.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded",
		zap.Int("courts", len(cat.Courts)),
		zap.Int("reviews", len(cat.Reviews)),
		zap.String("path", settings.CatalogPath),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collectorSet := metrics.New(registry)
	analyticsService := analytics.NewService()
	courtStore := store.NewCourtStore(cat.Courts, cat.Reviews)

	svc, err := courts.NewService(courtStore, settings.Search.Fields,
		courts.WithAnalytics(analyticsService),
		courts.WithMetrics(collectorSet),
		courts.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create court service: %w", err)
	}

	return &app{
		settings:  settings,
		logger:    log,
		store:     courtStore,
		courts:    svc,
		analytics: analyticsService,
		metrics:   collectorSet,
		registry:  registry,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
