package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/logger"
	"github.com/evyataryagoni/bio-explorer/internal/metrics"
	"github.com/evyataryagoni/bio-explorer/internal/models"
)

// ErrEmptyQuery is returned when a search query is blank. The handler
// rejects blank queries before calling the service, so hitting this means
// a caller skipped the boundary validation.
var ErrEmptyQuery = errors.New("search query must not be empty")

// SpeciesService resolves free-text names to GBIF taxon matches.
type SpeciesService struct {
	api       gbif.API
	validator *validator.Validate
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewSpeciesService creates a species service.
// metrics and logger may be nil (tests).
func NewSpeciesService(api gbif.API, m *metrics.Metrics, log *logger.Logger) *SpeciesService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &SpeciesService{
		api:       api,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("SpeciesService"),
	}
}

// Search resolves query against the GBIF species match endpoint.
//
// The primary match comes first, followed by GBIF's alternatives in
// upstream order. Optional name fields default to empty strings. A NONE
// match type yields an empty, non-nil slice. Upstream failures propagate
// unchanged (they wrap gbif.ErrUpstream).
func (s *SpeciesService) Search(ctx context.Context, query string) ([]models.SpeciesMatch, error) {
	if err := s.validator.Var(query, "required"); err != nil {
		s.logger.Warn().Msg("Empty species search query")
		if s.metrics != nil {
			s.metrics.SpeciesSearchesTotal.WithLabelValues("validation_error").Inc()
		}
		return nil, ErrEmptyQuery
	}

	s.logger.Debug().Str("query", query).Msg("Resolving species name")
	match, err := s.api.MatchName(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Species name match failed")
		if s.metrics != nil {
			s.metrics.SpeciesSearchesTotal.WithLabelValues("upstream_error").Inc()
		}
		return nil, err
	}

	if match.MatchType == "" || match.MatchType == "NONE" {
		s.logger.Info().Str("query", query).Msg("No species match")
		if s.metrics != nil {
			s.metrics.SpeciesSearchesTotal.WithLabelValues("no_match").Inc()
		}
		return []models.SpeciesMatch{}, nil
	}

	results := make([]models.SpeciesMatch, 0, 1+len(match.Alternatives))
	results = append(results, toSpeciesMatch(match))
	for i := range match.Alternatives {
		results = append(results, toSpeciesMatch(&match.Alternatives[i]))
	}

	s.logger.Info().Str("query", query).Int("matches", len(results)).Msg("Species search successful")
	if s.metrics != nil {
		s.metrics.SpeciesSearchesTotal.WithLabelValues("success").Inc()
	}
	return results, nil
}

// toSpeciesMatch maps one GBIF name match onto the API model.
func toSpeciesMatch(m *gbif.NameMatch) models.SpeciesMatch {
	return models.SpeciesMatch{
		Key:            m.UsageKey,
		ScientificName: m.ScientificName,
		CommonName:     m.VernacularName,
		Rank:           m.Rank,
	}
}
