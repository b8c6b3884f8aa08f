package variant

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeValue lower-cases a variant value and strips every
// whitespace rune, so "Extra Large" and "extra large" normalize to
// the same string.
func NormalizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SkuKey joins one normalized value per property with "_", in
// property order. Two keys are equal iff their value tuples are equal
// under NormalizeValue.
func SkuKey(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = NormalizeValue(v)
	}
	return strings.Join(parts, "_")
}

// buildKeyTable computes the SKU key for every combination, in order.
// Distinct combinations normalizing to the same key would silently
// overwrite each other's pricing in the skus map, so duplicates are a
// hard failure naming both raw value tuples.
func buildKeyTable(combos [][]string) ([]string, error) {
	keys := make([]string, len(combos))
	seen := make(map[string]int, len(combos))
	for i, combo := range combos {
		key := SkuKey(combo)
		if j, dup := seen[key]; dup {
			return nil, &ValidationError{
				Field: "variantProperties",
				Message: fmt.Sprintf("sku key %q is ambiguous: [%s] and [%s] normalize to the same key",
					key, strings.Join(combos[j], ", "), strings.Join(combo, ", ")),
			}
		}
		seen[key] = i
		keys[i] = key
	}
	return keys, nil
}
