package courts

import (
	"fmt"

	"github.com/gcbaptista/court-finder/config"
	"github.com/gcbaptista/court-finder/internal/search"
	"github.com/gcbaptista/court-finder/model"
)

// accessors read the raw text of each searchable field.
var accessors = map[string]func(c *model.Court) string{
	config.FieldLocation: func(c *model.Court) string { return c.Location },
	config.FieldAddress:  func(c *model.Court) string { return c.Address },
	config.FieldState:    func(c *model.Court) string { return c.Location },
	config.FieldName:     func(c *model.Court) string { return c.Name },
	config.FieldSurface:  func(c *model.Court) string { return c.Surface },
}

// FieldSpecs turns configured weights into search field specs, preserving their order.
// The "state" field matches the location with its state abbreviation spelled out, so
// "cal" finds courts in "Fresno, CA".
func FieldSpecs(weights []config.FieldWeight) ([]search.FieldSpec[*model.Court], error) {
	specs := make([]search.FieldSpec[*model.Court], 0, len(weights))
	for _, w := range weights {
		get, ok := accessors[w.Field]
		if !ok {
			return nil, fmt.Errorf("unknown search field '%s'", w.Field)
		}

		spec := search.FieldSpec[*model.Court]{
			Name:   w.Field,
			Weight: w.Weight,
			Get: func(c *model.Court) string {
				if c == nil {
					return ""
				}
				return get(c)
			},
		}
		if w.Field == config.FieldState {
			spec.Transform = search.ExpandState[*model.Court]
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
