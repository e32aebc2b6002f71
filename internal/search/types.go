package search

// FieldSpec describes how one attribute of a record takes part in a weighted search.
type FieldSpec[T any] struct {
	Name   string  // Informational label, e.g. "location"
	Weight float64 // Added to the record's score when the field matches

	// Get reads the raw attribute value. An empty string means the value is absent.
	Get func(item T) string

	// Transform optionally derives the text to match from the raw value and the whole record.
	Transform func(raw string, item T) string
}

// scoredItem pairs a record with its accumulated score during one search call.
type scoredItem[T any] struct {
	item  T
	score float64
}
