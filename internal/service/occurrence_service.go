package service

import (
	"context"

	"github.com/evyataryagoni/bio-explorer/internal/gbif"
	"github.com/evyataryagoni/bio-explorer/internal/logger"
	"github.com/evyataryagoni/bio-explorer/internal/metrics"
	"github.com/evyataryagoni/bio-explorer/internal/models"
	"github.com/evyataryagoni/bio-explorer/internal/sample"
)

// OccurrenceService collects geographic occurrence points for a taxon.
//
// It paginates the GBIF occurrence search, accumulates coordinate pairs,
// and downsamples the result so one response never carries more than
// gbif.MaxOccurrencePoints points.
type OccurrenceService struct {
	api     gbif.API
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewOccurrenceService creates an occurrence service.
// metrics and logger may be nil (tests).
func NewOccurrenceService(api gbif.API, m *metrics.Metrics, log *logger.Logger) *OccurrenceService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &OccurrenceService{
		api:     api,
		metrics: m,
		logger:  log.WithComponent("OccurrenceService"),
	}
}

// Collect fetches every occurrence page for taxonKey and returns the
// accumulated points, sampled down to gbif.MaxOccurrencePoints.
//
// Pages are requested strictly sequentially: the endOfRecords flag and the
// next offset both depend on the prior page. Records missing either
// coordinate are dropped silently; they show up only as Returned being
// smaller than Total. Total always carries the upstream's full count, even
// when the points were capped.
//
// An absent endOfRecords flag stops the loop. That mirrors GBIF's
// documented behavior of always sending the flag, and assumes a response
// that omits it has no further pages; a misbehaving upstream that drops
// the flag mid-set would truncate the collection rather than loop forever.
//
// Any upstream failure aborts the whole collection: partial results are
// discarded, never returned.
func (s *OccurrenceService) Collect(ctx context.Context, taxonKey int) (*models.OccurrenceResult, error) {
	points := []models.Point{}
	offset := 0
	total := 0
	pages := 0

	for {
		page, err := s.api.OccurrencePage(ctx, taxonKey, gbif.PageSize, offset)
		if err != nil {
			s.logger.Error().Err(err).Int("taxon_key", taxonKey).Int("offset", offset).
				Msg("Occurrence collection aborted")
			if s.metrics != nil {
				s.metrics.OccurrenceCollectionsTotal.WithLabelValues("upstream_error").Inc()
			}
			return nil, err
		}

		pages++
		total = page.Count

		for _, rec := range page.Results {
			if rec.HasCoordinates() {
				points = append(points, models.Point{*rec.DecimalLatitude, *rec.DecimalLongitude})
			}
		}

		if page.Done() {
			break
		}
		offset += gbif.PageSize
	}

	sampled := sample.Points(points, gbif.MaxOccurrencePoints)

	s.logger.Info().
		Int("taxon_key", taxonKey).
		Int("pages", pages).
		Int("total", total).
		Int("collected", len(points)).
		Int("returned", len(sampled)).
		Msg("Occurrence collection complete")
	if s.metrics != nil {
		s.metrics.OccurrenceCollectionsTotal.WithLabelValues("success").Inc()
		s.metrics.OccurrencePagesFetched.Observe(float64(pages))
		s.metrics.OccurrencePointsReturned.Observe(float64(len(sampled)))
	}

	return &models.OccurrenceResult{
		Points:   sampled,
		Total:    total,
		Returned: len(sampled),
	}, nil
}
