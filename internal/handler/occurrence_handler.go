package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/service"
)

// OccurrenceHandler handles HTTP requests for occurrence point collection.
type OccurrenceHandler struct {
	service *service.OccurrenceService
}

// NewOccurrenceHandler creates a new occurrence handler with the given service
func NewOccurrenceHandler(service *service.OccurrenceService) *OccurrenceHandler {
	return &OccurrenceHandler{
		service: service,
	}
}

// Get handles GET /api/occurrences?taxon_key=<int>
// @Summary      Fetch occurrence points for a taxon
// @Description  Collect [lat,lng] occurrence coordinates from GBIF, capped at 10000 randomly sampled points
// @Tags         Occurrences
// @Produce      json
// @Param        taxon_key  query     int  true  "GBIF taxon key"  example(2435099)
// @Success      200  {object}  models.OccurrenceResult
// @Failure      400  {object}  models.ErrorResponse  "Missing or non-integer taxon_key"
// @Failure      502  {object}  models.ErrorResponse  "GBIF unavailable"
// @Router       /api/occurrences [get]
func (h *OccurrenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("taxon_key")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "taxon_key parameter required")
		return
	}

	taxonKey, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "taxon_key must be an integer")
		return
	}

	result, err := h.service.Collect(r.Context(), taxonKey)
	if err != nil {
		if errors.Is(err, gbif.ErrUpstream) {
			respondError(w, http.StatusBadGateway, "GBIF service unavailable")
		} else {
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}
