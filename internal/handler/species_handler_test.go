package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/models"
	"github.com/evyataryagoni/bio-explorer/internal/service"
)

func newSpeciesHandler(mockAPI *gbif.MockAPI) *SpeciesHandler {
	return NewSpeciesHandler(service.NewSpeciesService(mockAPI, nil, nil))
}

// TestSpeciesHandler_Search_Success tests a successful search response
func TestSpeciesHandler_Search_Success(t *testing.T) {
	mockAPI := gbif.NewMockAPI()
	mockAPI.MatchResponse = &gbif.NameMatch{
		MatchType:      "EXACT",
		UsageKey:       2435099,
		ScientificName: "Puma concolor",
		VernacularName: "Mountain Lion",
		Rank:           "SPECIES",
	}
	h := newSpeciesHandler(mockAPI)

	req := httptest.NewRequest(http.MethodGet, "/api/species/search?q=mountain+lion", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var resp models.SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].Key != 2435099 {
		t.Errorf("expected key 2435099, got %d", resp.Results[0].Key)
	}
	if resp.Results[0].CommonName != "Mountain Lion" {
		t.Errorf("expected common name 'Mountain Lion', got '%s'", resp.Results[0].CommonName)
	}
}

// TestSpeciesHandler_Search_MissingQuery tests the exact 400 body for a
// missing q parameter
func TestSpeciesHandler_Search_MissingQuery(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"q omitted", "/api/species/search"},
		{"q empty", "/api/species/search?q="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSpeciesHandler(gbif.NewMockAPI())

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			h.Search(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}

			var errResp models.ErrorResponse
			json.NewDecoder(rec.Body).Decode(&errResp)
			if errResp.Error != "q parameter required" {
				t.Errorf("unexpected error message: %s", errResp.Error)
			}
		})
	}
}

// TestSpeciesHandler_Search_UpstreamFailure tests the uniform 502 response
func TestSpeciesHandler_Search_UpstreamFailure(t *testing.T) {
	mockAPI := gbif.NewMockAPI()
	mockAPI.MatchErr = fmt.Errorf("%w: connection refused", gbif.ErrUpstream)
	h := newSpeciesHandler(mockAPI)

	req := httptest.NewRequest(http.MethodGet, "/api/species/search?q=puma", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)
	if errResp.Error != "GBIF service unavailable" {
		t.Errorf("unexpected error message: %s", errResp.Error)
	}
}

// TestSpeciesHandler_Search_NoMatchReturnsEmptyResults tests the empty
// results shape
func TestSpeciesHandler_Search_NoMatchReturnsEmptyResults(t *testing.T) {
	h := newSpeciesHandler(gbif.NewMockAPI())

	req := httptest.NewRequest(http.MethodGet, "/api/species/search?q=xyznotaspecies", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	// The results array must be present and empty, not null.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["results"]) != "[]" {
		t.Errorf("expected results [], got %s", raw["results"])
	}
}

// TestSpeciesHandler_Search_InternalError tests non-upstream failures map
// to a generic 500
func TestSpeciesHandler_Search_InternalError(t *testing.T) {
	mockAPI := gbif.NewMockAPI()
	mockAPI.MatchErr = fmt.Errorf("something unexpected")
	h := newSpeciesHandler(mockAPI)

	req := httptest.NewRequest(http.MethodGet, "/api/species/search?q=puma", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)
	// Internal details must not leak.
	if errResp.Error != "Internal server error" {
		t.Errorf("expected generic error message, got: %s", errResp.Error)
	}
}
