package store

import (
	"sync"

	"github.com/gcbaptista/court-finder/model"
)

// CourtStore is the in-memory court directory. It is built once at startup and shared
// by reference; courts are read-only after construction while reviews can be appended.
type CourtStore struct {
	mu             sync.RWMutex
	courts         []*model.Court          // Catalog order
	courtsByID     map[string]*model.Court // Court ID to court
	reviewsByCourt map[string][]model.Review
}

// NewCourtStore indexes courts and reviews. Reviews for unknown courts are kept and
// simply never surface through a court lookup.
func NewCourtStore(courts []model.Court, reviews []model.Review) *CourtStore {
	s := &CourtStore{
		courts:         make([]*model.Court, 0, len(courts)),
		courtsByID:     make(map[string]*model.Court, len(courts)),
		reviewsByCourt: make(map[string][]model.Review),
	}

	for i := range courts {
		c := courts[i]
		s.courts = append(s.courts, &c)
		s.courtsByID[c.ID] = &c
	}
	for _, r := range reviews {
		s.reviewsByCourt[r.CourtID] = append(s.reviewsByCourt[r.CourtID], r)
	}
	return s
}

// Courts returns every court in catalog order. The slice is a copy; the courts are shared.
func (s *CourtStore) Courts() []*model.Court {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Court, len(s.courts))
	copy(out, s.courts)
	return out
}

// Court looks a court up by ID.
func (s *CourtStore) Court(id string) (*model.Court, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courtsByID[id]
	return c, ok
}

// Reviews returns a copy of the reviews of a court, oldest submission first.
func (s *CourtStore) Reviews(courtID string) []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.reviewsByCourt[courtID]
	out := make([]model.Review, len(reviews))
	copy(out, reviews)
	return out
}

// ReviewCounts returns the review count of every court that has reviews.
func (s *CourtStore) ReviewCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.reviewsByCourt))
	for id, reviews := range s.reviewsByCourt {
		counts[id] = len(reviews)
	}
	return counts
}

// AddReview appends a review. It reports false when the court does not exist.
func (s *CourtStore) AddReview(r model.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courtsByID[r.CourtID]; !ok {
		return false
	}
	s.reviewsByCourt[r.CourtID] = append(s.reviewsByCourt[r.CourtID], r)
	return true
}

// Len returns the number of courts.
func (s *CourtStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.courts)
}
