// Package courts implements the court directory use cases: the filtered and ranked
// list view, the court detail view and review submission.
package courts

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gcbaptista/court-finder/config"
	"github.com/gcbaptista/court-finder/internal/analytics"
	apperrors "github.com/gcbaptista/court-finder/internal/errors"
	"github.com/gcbaptista/court-finder/internal/metrics"
	"github.com/gcbaptista/court-finder/internal/search"
	"github.com/gcbaptista/court-finder/model"
	"github.com/gcbaptista/court-finder/services"
	"github.com/gcbaptista/court-finder/store"
)

// Review form limits.
const (
	MaxUserNameLength = 50
	MaxCommentLength  = 500
	MinRating         = 1
	MaxRating         = 5
)

// Service implements services.CourtService over an in-memory CourtStore.
type Service struct {
	store     *store.CourtStore
	fields    []search.FieldSpec[*model.Court]
	analytics *analytics.Service
	metrics   *metrics.Collectors
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithAnalytics records every list query in the analytics service.
func WithAnalytics(a *analytics.Service) Option {
	return func(s *Service) { s.analytics = a }
}

// WithMetrics records searches and review submissions in Prometheus collectors.
func WithMetrics(m *metrics.Collectors) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock replaces time.Now for review dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a court service ranking with the given field weights.
func NewService(courtStore *store.CourtStore, weights []config.FieldWeight, opts ...Option) (*Service, error) {
	if courtStore == nil {
		return nil, fmt.Errorf("court store cannot be nil")
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("at least one search field weight is required")
	}

	fields, err := FieldSpecs(weights)
	if err != nil {
		return nil, err
	}

	s := &Service{
		store:  courtStore,
		fields: fields,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ services.CourtService = (*Service)(nil)

// List applies the surface and indoor facets, then ranks the remaining courts
// against the free-text query.
func (s *Service) List(query services.ListQuery) (services.CourtList, error) {
	if errs := ValidateListQuery(query); len(errs) > 0 {
		return services.CourtList{}, errs
	}

	startTime := time.Now()

	candidates := filterFacets(s.store.Courts(), query.Surface, query.Indoor)
	ranked := search.WeightedSearch(candidates, s.fields, query.Query)

	counts := s.store.ReviewCounts()
	summaries := make([]services.CourtSummary, len(ranked))
	for i, c := range ranked {
		summaries[i] = services.CourtSummary{Court: c, ReviewCount: counts[c.ID]}
	}

	took := time.Since(startTime)
	result := services.CourtList{
		Courts:  summaries,
		Total:   len(summaries),
		QueryID: s.newID(),
		Took:    took.Microseconds(),
	}

	if s.analytics != nil {
		s.analytics.TrackSearchEvent(model.SearchEvent{
			Query:        query.Query,
			Surface:      facetOrAll(query.Surface),
			Indoor:       facetOrAll(query.Indoor),
			ResponseTime: took,
			ResultCount:  result.Total,
		})
	}
	if s.metrics != nil {
		s.metrics.ObserveSearch(search.NormalizeQuery(query.Query), result.Total)
	}
	s.logger.Debug("court search",
		zap.String("query_id", result.QueryID),
		zap.String("query", query.Query),
		zap.String("surface", facetOrAll(query.Surface)),
		zap.String("indoor", facetOrAll(query.Indoor)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", result.Total),
		zap.Duration("took", took),
	)

	return result, nil
}

// Get returns the detail view of a court.
func (s *Service) Get(courtID string) (services.CourtDetail, error) {
	court, ok := s.store.Court(courtID)
	if !ok {
		return services.CourtDetail{}, apperrors.NewCourtNotFoundError(courtID)
	}

	reviews := s.store.Reviews(courtID)
	return services.CourtDetail{
		Court:       court,
		Reviews:     reviews,
		ReviewCount: len(reviews),
		Ratings:     RatingHistogram(reviews),
	}, nil
}

// Reviews returns the reviews of a court.
func (s *Service) Reviews(courtID string) ([]model.Review, error) {
	if _, ok := s.store.Court(courtID); !ok {
		return nil, apperrors.NewCourtNotFoundError(courtID)
	}
	return s.store.Reviews(courtID), nil
}

// SubmitReview validates input and adds the review to the court. Reviews live only
// as long as the process.
func (s *Service) SubmitReview(courtID string, input services.ReviewInput) (model.Review, error) {
	if _, ok := s.store.Court(courtID); !ok {
		return model.Review{}, apperrors.NewCourtNotFoundError(courtID)
	}

	if errs := ValidateReviewInput(input); len(errs) > 0 {
		s.observeReview(false)
		return model.Review{}, errs
	}

	review := model.Review{
		ID:       s.newID(),
		CourtID:  courtID,
		UserName: strings.TrimSpace(input.UserName),
		Rating:   input.Rating,
		Comment:  strings.TrimSpace(input.Comment),
		Date:     s.now().Format(time.DateOnly),
	}
	if !s.store.AddReview(review) {
		return model.Review{}, apperrors.NewCourtNotFoundError(courtID)
	}

	s.observeReview(true)
	s.logger.Info("review submitted",
		zap.String("court_id", courtID),
		zap.String("review_id", review.ID),
		zap.Int("rating", review.Rating),
	)
	return review, nil
}

func (s *Service) observeReview(accepted bool) {
	if s.metrics != nil {
		s.metrics.ObserveReview(accepted)
	}
}

// ValidateListQuery checks the facet values of a list query.
func ValidateListQuery(q services.ListQuery) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if q.Surface != "" && q.Surface != services.FacetAll && !model.IsKnownSurface(q.Surface) {
		errs = append(errs, apperrors.NewValidationError("surface",
			fmt.Sprintf("Surface must be 'all' or one of %s", strings.Join(model.Surfaces, ", "))))
	}
	switch q.Indoor {
	case "", services.FacetAll, services.IndoorOnly, services.OutdoorOnly:
	default:
		errs = append(errs, apperrors.NewValidationError("indoor", "Indoor must be 'all', 'indoor' or 'outdoor'"))
	}
	return errs
}

// ValidateReviewInput checks a review form: every field is required, the rating is
// 1 to 5 stars and text lengths are bounded.
func ValidateReviewInput(input services.ReviewInput) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if input.Rating < MinRating || input.Rating > MaxRating {
		errs = append(errs, apperrors.NewValidationError("rating", "Please select a rating between 1 and 5 stars"))
	}

	name := strings.TrimSpace(input.UserName)
	switch {
	case name == "":
		errs = append(errs, apperrors.NewValidationError("user_name", "Your name is required"))
	case utf8.RuneCountInString(name) > MaxUserNameLength:
		errs = append(errs, apperrors.NewValidationError("user_name",
			fmt.Sprintf("Name cannot be longer than %d characters", MaxUserNameLength)))
	}

	comment := strings.TrimSpace(input.Comment)
	switch {
	case comment == "":
		errs = append(errs, apperrors.NewValidationError("comment", "Your review is required"))
	case utf8.RuneCountInString(comment) > MaxCommentLength:
		errs = append(errs, apperrors.NewValidationError("comment",
			fmt.Sprintf("Review cannot be longer than %d characters", MaxCommentLength)))
	}

	return errs
}

// RatingHistogram counts reviews per star rating, from 5 stars down to 1.
// Percentages are of all reviews and are zero when there are none.
func RatingHistogram(reviews []model.Review) []services.RatingBucket {
	buckets := make([]services.RatingBucket, 0, MaxRating)
	for stars := MaxRating; stars >= MinRating; stars-- {
		count := 0
		for _, r := range reviews {
			if r.Rating == stars {
				count++
			}
		}

		var pct float64
		if len(reviews) > 0 {
			pct = float64(count) / float64(len(reviews)) * 100
		}
		buckets = append(buckets, services.RatingBucket{Stars: stars, Count: count, Percentage: pct})
	}
	return buckets
}

// filterFacets keeps the courts matching the surface and indoor facets, in input order.
func filterFacets(courts []*model.Court, surface, indoor string) []*model.Court {
	surface = facetOrAll(surface)
	indoor = facetOrAll(indoor)
	if surface == services.FacetAll && indoor == services.FacetAll {
		return courts
	}

	filtered := make([]*model.Court, 0, len(courts))
	for _, c := range courts {
		matchesSurface := surface == services.FacetAll || c.Surface == surface
		matchesIndoor := indoor == services.FacetAll ||
			(indoor == services.IndoorOnly && c.Indoor) ||
			(indoor == services.OutdoorOnly && !c.Indoor)
		if matchesSurface && matchesIndoor {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func facetOrAll(v string) string {
	if v == "" {
		return services.FacetAll
	}
	return v
}
