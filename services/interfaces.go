package services

import (
	"github.com/gcbaptista/court-finder/model"
)

// Facet values. An empty facet means FacetAll.
const (
	FacetAll    = "all"
	IndoorOnly  = "indoor"
	OutdoorOnly = "outdoor"
)

// ListQuery selects and ranks courts for the list view.
type ListQuery struct {
	Query   string `form:"q" json:"q"`             // Free text, ranked with the weighted search
	Surface string `form:"surface" json:"surface"` // "all" or one of model.Surfaces (exact match)
	Indoor  string `form:"indoor" json:"indoor"`   // "all", "indoor" or "outdoor"
}

// CourtSummary is one row of the list view.
type CourtSummary struct {
	*model.Court
	ReviewCount int `json:"review_count"`
}

// CourtList is the ranked result of a list query.
type CourtList struct {
	Courts  []CourtSummary `json:"courts"`
	Total   int            `json:"total"`
	QueryID string         `json:"query_id"` // unique UUID for this search
	Took    int64          `json:"took"`     // microseconds
}

// RatingBucket counts the reviews with a given star rating.
type RatingBucket struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CourtDetail is everything the detail view shows about one court.
type CourtDetail struct {
	Court       *model.Court   `json:"court"`
	Reviews     []model.Review `json:"reviews"`
	ReviewCount int            `json:"review_count"`
	Ratings     []RatingBucket `json:"ratings"` // 5 stars down to 1
}

// ReviewInput is a review as typed by a user.
type ReviewInput struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// CourtBrowser serves the list and detail views
type CourtBrowser interface {
	List(query ListQuery) (CourtList, error)
	Get(courtID string) (CourtDetail, error)
	Reviews(courtID string) ([]model.Review, error)
}

// ReviewSubmitter accepts new reviews
type ReviewSubmitter interface {
	SubmitReview(courtID string, input ReviewInput) (model.Review, error)
}

// CourtService combines browsing and review submission
type CourtService interface {
	CourtBrowser
	ReviewSubmitter
}
