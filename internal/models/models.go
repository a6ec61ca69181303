package models

// Point is a [latitude, longitude] pair. It marshals as a two-element JSON
// array, which is the shape the heatmap frontend consumes directly.
type Point [2]float64

// Lat returns the latitude component.
func (p Point) Lat() float64 { return p[0] }

// Lng returns the longitude component.
func (p Point) Lng() float64 { return p[1] }

// SpeciesMatch is one taxon match from a species name search.
// A search returns the primary match first, then any alternatives in the
// order GBIF reported them.
type SpeciesMatch struct {
	Key            int    `json:"key"`            // GBIF usage key (taxon key)
	ScientificName string `json:"scientificName"` // May be empty
	CommonName     string `json:"commonName"`     // Vernacular name, may be empty
	Rank           string `json:"rank"`           // e.g. SPECIES, GENUS; may be empty
}

// SearchResponse wraps species search results for the API response.
type SearchResponse struct {
	Results []SpeciesMatch `json:"results"`
}

// OccurrenceResult is the outcome of collecting occurrence points for a
// taxon. Total is the full upstream count; Returned is len(Points), which
// can be smaller than Total because of the point cap or because records
// lacked coordinates.
type OccurrenceResult struct {
	Points   []Point `json:"points"`
	Total    int     `json:"total"`
	Returned int     `json:"returned"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}
