package gbif

import "context"

// MockAPI is an in-memory fake of the GBIF API for testing.
// Pages are indexed by offset/limit, so a collector walking sequential
// offsets sees them in order. Calls are recorded for assertions.
type MockAPI struct {
	// MatchResponse is returned by MatchName. When nil, a NONE match is
	// returned instead.
	MatchResponse *NameMatch

	// MatchErr, when set, is returned by every MatchName call.
	MatchErr error

	// Pages holds the occurrence pages in upstream order.
	Pages []OccurrencePage

	// PageErr, when set, is returned by OccurrencePage for the page at
	// index PageErrOnPage (zero-based, so the zero value fails the first
	// page).
	PageErr       error
	PageErrOnPage int

	// Recorded calls.
	MatchCalls []string
	PageCalls  []PageCall
}

// PageCall records the arguments of one OccurrencePage call.
type PageCall struct {
	TaxonKey int
	Limit    int
	Offset   int
}

// NewMockAPI creates an empty mock.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

// MatchName implements API.
func (m *MockAPI) MatchName(_ context.Context, name string) (*NameMatch, error) {
	m.MatchCalls = append(m.MatchCalls, name)

	if m.MatchErr != nil {
		return nil, m.MatchErr
	}
	if m.MatchResponse == nil {
		return &NameMatch{MatchType: "NONE"}, nil
	}
	return m.MatchResponse, nil
}

// OccurrencePage implements API.
func (m *MockAPI) OccurrencePage(_ context.Context, taxonKey, limit, offset int) (*OccurrencePage, error) {
	m.PageCalls = append(m.PageCalls, PageCall{TaxonKey: taxonKey, Limit: limit, Offset: offset})

	index := 0
	if limit > 0 {
		index = offset / limit
	}

	if m.PageErr != nil && index == m.PageErrOnPage {
		return nil, m.PageErr
	}

	// Past the configured pages: an empty final page.
	if index >= len(m.Pages) {
		done := true
		return &OccurrencePage{Count: 0, EndOfRecords: &done}, nil
	}

	page := m.Pages[index]
	return &page, nil
}

// Bool is a helper for building pages with explicit endOfRecords flags.
func Bool(v bool) *bool {
	return &v
}
