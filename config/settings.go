// Package config provides configuration structures for the court finder.
// It defines server, logging and search settings, including the field weights
// used to rank courts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Searchable court fields that can be given a weight.
// "state" is the location with its state abbreviation expanded to the full name.
const (
	FieldLocation = "location"
	FieldAddress  = "address"
	FieldState    = "state"
	FieldName     = "name"
	FieldSurface  = "surface"
)

// SearchableFields lists every field name accepted in SearchSettings.Fields.
var SearchableFields = []string{FieldLocation, FieldAddress, FieldState, FieldName, FieldSurface}

// FieldWeight assigns a ranking weight to one searchable court field.
// The order of SearchSettings.Fields is the order in which fields are evaluated.
type FieldWeight struct {
	Field  string  `yaml:"field" json:"field"`   // One of SearchableFields
	Weight float64 `yaml:"weight" json:"weight"` // Added to a court's score when the field matches
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Port         int   `yaml:"port" json:"port"`
	MaxBodyBytes int64 `yaml:"max_body_bytes" json:"max_body_bytes"` // Request body limit for review submissions
}

// LoggingSettings configures the zap logger.
type LoggingSettings struct {
	Env   string `yaml:"env" json:"env"`     // "prod" (JSON) or "dev" (console)
	Level string `yaml:"level" json:"level"` // debug, info, warn, error; empty keeps the env default
}

// SearchSettings configures ranking and the interactive search box.
type SearchSettings struct {
	DebounceMs int           `yaml:"debounce_ms" json:"debounce_ms"` // Idle time before a typed query is searched
	Fields     []FieldWeight `yaml:"fields" json:"fields"`
}

// Settings is the complete application configuration.
type Settings struct {
	Server      ServerSettings  `yaml:"server" json:"server"`
	Logging     LoggingSettings `yaml:"logging" json:"logging"`
	Search      SearchSettings  `yaml:"search" json:"search"`
	CatalogPath string          `yaml:"catalog_path" json:"catalog_path"` // Optional YAML catalog replacing the built-in one
}

// DefaultFieldWeights returns the default ranking: location and expanded state first,
// then address, name and surface.
func DefaultFieldWeights() []FieldWeight {
	return []FieldWeight{
		{Field: FieldLocation, Weight: 5},
		{Field: FieldAddress, Weight: 4},
		{Field: FieldState, Weight: 5},
		{Field: FieldName, Weight: 2},
		{Field: FieldSurface, Weight: 1},
	}
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := &Settings{}
	s.ApplyDefaults()
	return s
}

// Load reads settings from a YAML file. An empty path yields the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is an operator-supplied flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	s := &Settings{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	s.ApplyDefaults()
	if conflicts := s.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(conflicts, "; "))
	}
	return s, nil
}

// ApplyDefaults applies default values to the settings
func (s *Settings) ApplyDefaults() {
	if s.Server.Port == 0 {
		s.Server.Port = 8080
	}
	if s.Server.MaxBodyBytes == 0 {
		s.Server.MaxBodyBytes = 64 << 10
	}
	if s.Logging.Env == "" {
		s.Logging.Env = "dev"
	}
	if s.Search.DebounceMs == 0 {
		s.Search.DebounceMs = 150
	}
	if len(s.Search.Fields) == 0 {
		s.Search.Fields = DefaultFieldWeights()
	}
}

// Validate returns a description of every problem found; an empty result means valid.
func (s *Settings) Validate() []string {
	var conflicts []string

	if s.Server.Port < 1 || s.Server.Port > 65535 {
		conflicts = append(conflicts, fmt.Sprintf("server.port %d is out of range", s.Server.Port))
	}
	if s.Server.MaxBodyBytes < 0 {
		conflicts = append(conflicts, "server.max_body_bytes cannot be negative")
	}
	if s.Logging.Env != "prod" && s.Logging.Env != "dev" {
		conflicts = append(conflicts, "Invalid logging.env '"+s.Logging.Env+"' (must be 'prod' or 'dev')")
	}
	if s.Search.DebounceMs < 0 {
		conflicts = append(conflicts, "search.debounce_ms cannot be negative")
	}

	conflicts = append(conflicts, validateFieldWeights(s.Search.Fields)...)

	return conflicts
}

// DebounceDelay returns the configured debounce delay.
func (s *Settings) DebounceDelay() time.Duration {
	return time.Duration(s.Search.DebounceMs) * time.Millisecond
}

// validateFieldWeights checks that every field is known, positively weighted and listed once.
func validateFieldWeights(fields []FieldWeight) []string {
	var problems []string

	known := make(map[string]bool, len(SearchableFields))
	for _, f := range SearchableFields {
		known[f] = true
	}

	seen := make(map[string]bool)
	for _, fw := range fields {
		if strings.TrimSpace(fw.Field) == "" {
			problems = append(problems, "Field name cannot be empty or whitespace-only")
			continue
		}
		if !known[fw.Field] {
			problems = append(problems, "Unknown field '"+fw.Field+"' in search.fields (must be one of "+strings.Join(SearchableFields, ", ")+")")
		}
		if fw.Weight <= 0 {
			problems = append(problems, fmt.Sprintf("Field '%s' in search.fields must have a positive weight, got %g", fw.Field, fw.Weight))
		}
		if seen[fw.Field] {
			problems = append(problems, "Duplicate field '"+fw.Field+"' found in search.fields")
		}
		seen[fw.Field] = true
	}

	return problems
}
