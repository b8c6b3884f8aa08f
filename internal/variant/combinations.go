package variant

import (
	"fmt"
	"strings"

	"github.com/shipora/console-golang/internal/models"
)

// expandCombinations builds the Cartesian product of every property's
// non-blank values, keeping property order as the dimension order:
// the first property varies slowest. Zero properties yields zero
// combinations, not a single empty one.
//
// A property whose values are all blank would collapse the whole
// product to nothing and silently discard every SKU row the user
// typed, so it fails instead.
func expandCombinations(props []models.VariantProperty) ([][]string, error) {
	if len(props) == 0 {
		return nil, nil
	}

	axes := make([][]string, len(props))
	for i, prop := range props {
		var vals []string
		for _, v := range prop.Values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			return nil, &ValidationError{
				Field:   "variantProperties",
				Message: fmt.Sprintf("property %q has no usable values", prop.Name),
			}
		}
		axes[i] = vals
	}

	combos := [][]string{{}}
	for _, axis := range axes {
		next := make([][]string, 0, len(combos)*len(axis))
		for _, combo := range combos {
			for _, v := range axis {
				row := make([]string, len(combo), len(combo)+1)
				copy(row, combo)
				next = append(next, append(row, v))
			}
		}
		combos = next
	}
	return combos, nil
}
