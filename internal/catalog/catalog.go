// Package catalog loads the court directory seed data (courts and reviews) from YAML.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/gcbaptista/court-finder/internal/errors"
	"github.com/gcbaptista/court-finder/model"
)

//go:embed courts.yaml
var defaultData []byte

// Catalog is the decoded seed data.
type Catalog struct {
	Courts  []model.Court  `yaml:"courts"`
	Reviews []model.Review `yaml:"reviews"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultData))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates a catalog.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that court IDs are unique and every review points at a known court.
func (c *Catalog) Validate() error {
	ids := make(map[string]bool, len(c.Courts))
	for i, court := range c.Courts {
		if court.ID == "" {
			return apperrors.NewCatalogError("court at index %d has no id", i)
		}
		if ids[court.ID] {
			return apperrors.NewCatalogError("duplicate court id '%s'", court.ID)
		}
		ids[court.ID] = true
	}

	for i, review := range c.Reviews {
		if !ids[review.CourtID] {
			return apperrors.NewCatalogError("review at index %d references unknown court '%s'", i, review.CourtID)
		}
		if review.Rating < 1 || review.Rating > 5 {
			return apperrors.NewCatalogError("review '%s' has rating %d outside 1..5", review.ID, review.Rating)
		}
	}
	return nil
}
