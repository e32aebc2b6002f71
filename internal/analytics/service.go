package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/court-finder/internal/search"
	"github.com/gcbaptista/court-finder/model"
)

const (
	maxEventsToKeep = 10000 // Keep last 10k events for performance
	topQueries      = 5
)

// Service keeps recent court searches in memory and aggregates them for the dashboard.
// Nothing is persisted; a restart starts from an empty history.
type Service struct {
	mutex  sync.RWMutex
	events []model.SearchEvent
	now    func() time.Time
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
		now:    time.Now,
	}
}

// TrackSearchEvent records a new search event. Queries are stored normalized so
// "Boston" and " boston" count as the same search.
func (s *Service) TrackSearchEvent(event model.SearchEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Query = search.NormalizeQuery(event.Query)
	event.Timestamp = s.now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// GetDashboardData returns the aggregated analytics of the searches tracked so far
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		AvgResponseTimeMicros:    s.calculateAvgResponseTime(),
		AvgResultCount:           s.calculateAvgResultCount(),
		PopularSearches:          s.getTopQueries(func(model.SearchEvent) bool { return true }),
		ZeroResultSearches:       s.getTopQueries(func(e model.SearchEvent) bool { return e.ResultCount == 0 }),
		ResponseTimeDistribution: s.getResponseTimeDistribution(),
	}
}

// calculateAvgResponseTime calculates average response time in microseconds
func (s *Service) calculateAvgResponseTime() int64 {
	if len(s.events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range s.events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(s.events))).Microseconds()
}

func (s *Service) calculateAvgResultCount() float64 {
	if len(s.events) == 0 {
		return 0
	}

	total := 0
	for _, event := range s.events {
		total += event.ResultCount
	}
	return float64(total) / float64(len(s.events))
}

// getTopQueries returns the most frequent non-empty queries among events accepted by keep.
// Ties are broken alphabetically so the dashboard is stable between refreshes.
func (s *Service) getTopQueries(keep func(model.SearchEvent) bool) []model.PopularSearch {
	queryCounts := make(map[string]int)
	for _, event := range s.events {
		if event.Query != "" && keep(event) {
			queryCounts[event.Query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > topQueries {
		popular = popular[:topQueries]
	}
	return popular
}

// getResponseTimeDistribution buckets response times
func (s *Service) getResponseTimeDistribution() model.ResponseTimeDistribution {
	var dist model.ResponseTimeDistribution

	for _, event := range s.events {
		switch rt := event.ResponseTime; {
		case rt < time.Millisecond:
			dist.Bucket0To1ms++
		case rt < 5*time.Millisecond:
			dist.Bucket1To5ms++
		case rt < 25*time.Millisecond:
			dist.Bucket5To25ms++
		default:
			dist.Bucket25msPlus++
		}
	}
	return dist
}
