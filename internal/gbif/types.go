package gbif

// Wire types for the GBIF v1 API responses. Only the fields this service
// reads are declared; GBIF sends many more.

// NameMatch is the response of the species match endpoint. Alternatives
// carry the same shape minus their own alternatives list.
type NameMatch struct {
	MatchType      string      `json:"matchType"`
	UsageKey       int         `json:"usageKey"`
	ScientificName string      `json:"scientificName"`
	VernacularName string      `json:"vernacularName"`
	Rank           string      `json:"rank"`
	Alternatives   []NameMatch `json:"alternatives"`
}

// OccurrencePage is one page of the occurrence search endpoint.
type OccurrencePage struct {
	// Count is the full number of matching occurrences, not the page size.
	// GBIF reports it on every page; the last page's value is authoritative.
	Count int `json:"count"`

	// EndOfRecords is a pointer so an absent flag is distinguishable from
	// an explicit false. GBIF always sends it in practice; absence is
	// treated as end-of-records (see Done).
	EndOfRecords *bool `json:"endOfRecords"`

	Results []OccurrenceRecord `json:"results"`
}

// Done reports whether this is the final page. An absent endOfRecords flag
// counts as done: assuming more pages exist without the flag would risk an
// infinite pagination loop against a misbehaving upstream.
func (p *OccurrencePage) Done() bool {
	return p.EndOfRecords == nil || *p.EndOfRecords
}

// OccurrenceRecord is a single occurrence. Coordinates are pointers
// because GBIF records may lack either one even under the hasCoordinate
// filter.
type OccurrenceRecord struct {
	DecimalLatitude  *float64 `json:"decimalLatitude"`
	DecimalLongitude *float64 `json:"decimalLongitude"`
}

// HasCoordinates reports whether both coordinates are present.
func (r OccurrenceRecord) HasCoordinates() bool {
	return r.DecimalLatitude != nil && r.DecimalLongitude != nil
}
