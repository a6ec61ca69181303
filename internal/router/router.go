package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/evyataryagoni/bio-explorer/docs" // Swagger docs
	"github.com/evyataryagoni/bio-explorer/internal/handler"
	"github.com/evyataryagoni/bio-explorer/internal/logger"
	"github.com/evyataryagoni/bio-explorer/internal/metrics"
	custommiddleware "github.com/evyataryagoni/bio-explorer/internal/middleware"
	"github.com/evyataryagoni/bio-explorer/internal/router/api"
)

// indexPage is a minimal landing page pointing at the API surface.
const indexPage = `<!DOCTYPE html>
<html>
<head><title>Bio Explorer</title></head>
<body>
<h1>Bio Explorer</h1>
<p>Species occurrence explorer backed by <a href="https://www.gbif.org/">GBIF</a>.</p>
<ul>
<li><code>GET /api/species/search?q=&lt;name&gt;</code></li>
<li><code>GET /api/occurrences?taxon_key=&lt;int&gt;</code></li>
<li><a href="/swagger/index.html">API documentation</a></li>
</ul>
</body>
</html>
`

// SetupRouter creates and configures the chi router with all middleware
// and routes.
func SetupRouter(speciesHandler *handler.SpeciesHandler, occurrenceHandler *handler.OccurrenceHandler, m *metrics.Metrics, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware; order matters. RequestID first so logging can
	// pick it up, Recoverer after logging so panics still get logged.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.MetricsMiddleware(m))

	// API routes under /api
	r.Mount("/api", api.SetupRoutes(speciesHandler, occurrenceHandler))

	// Landing page
	r.Get("/", indexHandler)

	// Health check endpoint - used by load balancers and monitoring
	r.Get("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI: http://localhost:3000/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

// healthCheckHandler returns 200 OK while the service is running.
// There is no backing store to probe; GBIF reachability is deliberately
// not part of health, a dead upstream should not evict this process.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
