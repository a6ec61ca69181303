package main

import (
	"net/http"
	"time"

	"github.com/evyataryagoni/bio-explorer/internal/config"
	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/handler"
	"github.com/evyataryagoni/bio-explorer/internal/logger"
	"github.com/evyataryagoni/bio-explorer/internal/metrics"
	"github.com/evyataryagoni/bio-explorer/internal/router"
	"github.com/evyataryagoni/bio-explorer/internal/service"
)

// @title           Bio Explorer API
// @version         1.0
// @description     Species search and occurrence point collection backed by the GBIF biodiversity API

// @contact.name   Evyatar Yagoni
// @contact.email  evyatar@example.com

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	// Load configuration
	appConfig := config.Load()

	// Initialize components
	appLogger := setupLogger(appConfig)
	metricsCollector := setupMetrics(appLogger)
	gbifClient := setupGBIFClient(appConfig, metricsCollector, appLogger)

	// Build application layers
	speciesService := service.NewSpeciesService(gbifClient, metricsCollector, appLogger)
	occurrenceService := service.NewOccurrenceService(gbifClient, metricsCollector, appLogger)

	speciesHandler := handler.NewSpeciesHandler(speciesService)
	occurrenceHandler := handler.NewOccurrenceHandler(occurrenceService)

	appRouter := router.SetupRouter(speciesHandler, occurrenceHandler, metricsCollector, appLogger)

	// Start server
	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().Msg("Starting Bio Explorer Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("gbif_base_url", appConfig.GBIFBaseURL).
		Int("gbif_timeout_seconds", appConfig.GBIFTimeoutSeconds).
		Msg("Configuration loaded")

	return appLogger
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New()
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// setupGBIFClient builds the GBIF API client around one shared pooled
// HTTP client. The client is created here once and injected; every
// request handler reuses its connection pool for the process lifetime.
func setupGBIFClient(appConfig *config.Config, m *metrics.Metrics, log *logger.Logger) *gbif.Client {
	httpClient := &http.Client{
		Timeout: time.Duration(appConfig.GBIFTimeoutSeconds) * time.Second,
	}

	return gbif.NewClient(
		gbif.WithBaseURL(appConfig.GBIFBaseURL),
		gbif.WithHTTPClient(httpClient),
		gbif.WithMetrics(m),
		gbif.WithLogger(log),
	)
}

// startServer starts the HTTP server and blocks
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	serverAddr := ":" + appConfig.Port

	log.Info().
		Str("port", appConfig.Port).
		Str("species_search", "http://localhost:"+appConfig.Port+"/api/species/search?q=<name>").
		Str("occurrences", "http://localhost:"+appConfig.Port+"/api/occurrences?taxon_key=<key>").
		Str("health_check", "http://localhost:"+appConfig.Port+"/health").
		Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
		Str("swagger", "http://localhost:"+appConfig.Port+"/swagger/index.html").
		Msg("Server is running")

	log.Fatal().Err(http.ListenAndServe(serverAddr, appRouter)).Msg("Server failed")
}
