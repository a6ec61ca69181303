package handler

import (
	"errors"
	"net/http"

	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/models"
	"github.com/evyataryagoni/bio-explorer/internal/service"
)

// SpeciesHandler handles HTTP requests for species name searches.
// It parses query parameters, calls the service, and maps results and
// failures onto JSON responses; no business logic lives here.
type SpeciesHandler struct {
	service *service.SpeciesService
}

// NewSpeciesHandler creates a new species handler with the given service
func NewSpeciesHandler(service *service.SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{
		service: service,
	}
}

// Search handles GET /api/species/search?q=<name>
// @Summary      Search species by name
// @Description  Resolve a common or scientific species name to GBIF taxon matches
// @Tags         Species
// @Produce      json
// @Param        q    query     string  true  "Species name (common or scientific)"  example(mountain lion)
// @Success      200  {object}  models.SearchResponse
// @Failure      400  {object}  models.ErrorResponse  "Missing q parameter"
// @Failure      502  {object}  models.ErrorResponse  "GBIF unavailable"
// @Router       /api/species/search [get]
func (h *SpeciesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "q parameter required")
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, gbif.ErrUpstream) {
			respondError(w, http.StatusBadGateway, "GBIF service unavailable")
		} else {
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, models.SearchResponse{Results: results})
}
