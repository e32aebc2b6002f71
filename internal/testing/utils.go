// Package testing provides fixtures and helpers for testing the court finder.
package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/court-finder/config"
	"github.com/gcbaptista/court-finder/internal/courts"
	"github.com/gcbaptista/court-finder/model"
	"github.com/gcbaptista/court-finder/services"
	"github.com/gcbaptista/court-finder/store"
)

// SampleCourts returns a small directory covering every facet combination used in tests.
func SampleCourts() []model.Court {
	return []model.Court{
		{ID: "c1", Name: "Riverside Courts", Location: "Boston, MA", Address: "1 River St", Surface: "Clay", Indoor: false, Rating: 4.5},
		{ID: "c2", Name: "Cal Courts", Location: "Fresno, CA", Address: "2 Cal Ave", Surface: "Hard", Indoor: false, Rating: 4.1},
		{ID: "c3", Name: "Back Bay Indoor", Location: "Boston, MA", Address: "225 Boylston St", Surface: "Hard", Indoor: true, Rating: 4.8},
		{ID: "c4", Name: "Venice Beach Tennis", Location: "Los Angeles, CA", Address: "1800 Ocean Front Walk", Surface: "Hard", Indoor: false, Rating: 4.4},
		{ID: "c5", Name: "Westside Clay Club", Location: "Scarsdale, NY", Address: "40 Popham Rd", Surface: "Clay", Indoor: false, Rating: 4.7},
		{ID: "c6", Name: "Newport Grass", Location: "Newport, RI", Address: "194 Bellevue Ave", Surface: "Grass", Indoor: false, Rating: 4.9},
		{ID: "c7", Name: "Lakeshore Indoor", Location: "Chicago, IL", Address: "500 N Lake Shore Dr", Surface: "Synthetic", Indoor: true, Rating: 4.3},
	}
}

// SampleReviews returns reviews for the sample courts.
func SampleReviews() []model.Review {
	return []model.Review{
		{ID: "r1", CourtID: "c1", UserName: "Maria", Rating: 5, Comment: "Great", Date: "2025-05-14"},
		{ID: "r2", CourtID: "c1", UserName: "Tom", Rating: 4, Comment: "Good", Date: "2025-06-02"},
		{ID: "r3", CourtID: "c1", UserName: "Chen", Rating: 5, Comment: "Lovely", Date: "2025-07-29"},
		{ID: "r4", CourtID: "c3", UserName: "Priya", Rating: 3, Comment: "Fine", Date: "2025-03-21"},
	}
}

// NewTestStore creates a CourtStore holding the sample data.
func NewTestStore() *store.CourtStore {
	return store.NewCourtStore(SampleCourts(), SampleReviews())
}

// NewTestService creates a court service over the sample data with default weights.
func NewTestService(t *testing.T, opts ...courts.Option) *courts.Service {
	t.Helper()

	svc, err := courts.NewService(NewTestStore(), config.DefaultFieldWeights(), opts...)
	require.NoError(t, err, "Failed to create court service")
	return svc
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SummaryIDs extracts the court IDs of a list result, in ranking order.
func SummaryIDs(list services.CourtList) []string {
	ids := make([]string, len(list.Courts))
	for i, c := range list.Courts {
		ids[i] = c.ID
	}
	return ids
}
