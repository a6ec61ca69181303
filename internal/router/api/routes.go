package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/evyataryagoni/bio-explorer/internal/handler"
)

// SetupRoutes configures the /api route group.
func SetupRoutes(speciesHandler *handler.SpeciesHandler, occurrenceHandler *handler.OccurrenceHandler) chi.Router {
	r := chi.NewRouter()

	// GET /api/species/search?q=<name>
	r.Get("/species/search", speciesHandler.Search)

	// GET /api/occurrences?taxon_key=<int>
	r.Get("/occurrences", occurrenceHandler.Get)

	return r
}
