package model

// Surfaces lists the court surfaces offered as facet filters, in display order.
var Surfaces = []string{"Hard", "Clay", "Grass", "Synthetic"}

// IsKnownSurface reports whether surface is one of Surfaces (exact match).
func IsKnownSurface(surface string) bool {
	for _, s := range Surfaces {
		if s == surface {
			return true
		}
	}
	return false
}

// Court is a tennis court entry of the directory.
type Court struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Location    string   `json:"location" yaml:"location"` // "City, ST"
	Address     string   `json:"address" yaml:"address"`
	Surface     string   `json:"surface" yaml:"surface"`
	Indoor      bool     `json:"indoor" yaml:"indoor"`
	Lighting    bool     `json:"lighting" yaml:"lighting"`
	Rating      float64  `json:"rating" yaml:"rating"`
	HourlyRate  int      `json:"hourly_rate" yaml:"hourly_rate"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Phone       string   `json:"phone" yaml:"phone"`
	Website     string   `json:"website,omitempty" yaml:"website"`
	Amenities   []string `json:"amenities" yaml:"amenities"`
}

// Review is a user review of a court.
type Review struct {
	ID       string `json:"id" yaml:"id"`
	CourtID  string `json:"court_id" yaml:"court_id"`
	UserName string `json:"user_name" yaml:"user_name"`
	Rating   int    `json:"rating" yaml:"rating"` // 1..5
	Comment  string `json:"comment" yaml:"comment"`
	Date     string `json:"date" yaml:"date"` // YYYY-MM-DD
}
