package model

import "time"

// SearchEvent represents a single court search for analytics tracking
type SearchEvent struct {
	Query        string        `json:"query"`
	Surface      string        `json:"surface"`
	Indoor       string        `json:"indoor"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To1ms   int `json:"bucket_0_1ms"`
	Bucket1To5ms   int `json:"bucket_1_5ms"`
	Bucket5To25ms  int `json:"bucket_5_25ms"`
	Bucket25msPlus int `json:"bucket_25ms_plus"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSearches            int                      `json:"total_searches"`
	AvgResponseTimeMicros    int64                    `json:"avg_response_time_us"`
	AvgResultCount           float64                  `json:"avg_result_count"`
	PopularSearches          []PopularSearch          `json:"popular_searches"`
	ZeroResultSearches       []PopularSearch          `json:"zero_result_searches"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
