// Package variant converts between the console's editable product
// form and the backend's persisted product payload. Both directions
// are pure, synchronous transforms: no I/O, no logging, no state
// shared across calls.
package variant

import (
	"strconv"
	"strings"

	"github.com/shipora/console-golang/internal/models"
)

// ImageTypeImage is the content type the backend stores for still
// images (as opposed to video entries in the same list).
const ImageTypeImage = "image"

// BuildPayload converts the editable form into the backend's
// create/update body.
//
// Combinations without a non-blank entry in the form's sku map are
// skipped: the console lets the user price only part of the grid, and
// the backend never stores the unpriced rest. An entry is non-blank
// when its price or stock survives trimming.
func BuildPayload(form *models.ProductForm) (*models.ProductPayload, error) {
	// The cover image is the first list entry, so an empty list is a
	// contract violation rather than something to coerce around.
	if len(form.Images) == 0 {
		return nil, &ValidationError{Field: "images", Message: "at least one product image is required"}
	}

	// --- 1. Property order + per-property value records ---
	propsOrder := make([]string, len(form.VariantProperties))
	variants := make(map[string][]models.VariantValue, len(form.VariantProperties))
	for i, prop := range form.VariantProperties {
		name := strings.ToLower(prop.Name)
		propsOrder[i] = name

		vals := make([]models.VariantValue, len(prop.Values))
		for j, v := range prop.Values {
			vals[j] = models.VariantValue{ID: strconv.Itoa(j), Text: v}
		}
		variants[name] = vals
	}

	// --- 2. Combination grid + collision-checked keys ---
	combos, err := expandCombinations(form.VariantProperties)
	if err != nil {
		return nil, err
	}
	keys, err := buildKeyTable(combos)
	if err != nil {
		return nil, err
	}
	if combos == nil {
		combos = [][]string{}
	}

	// --- 3. One SkuRecord per priced combination, ids 1-based in
	// generation order ---
	skus := make(map[string]models.SkuRecord)
	skuID := 0
	for _, key := range keys {
		entry, ok := form.SkuMap[key]
		if !ok || (strings.TrimSpace(entry.Price) == "" && strings.TrimSpace(entry.Stock) == "") {
			continue
		}
		skuID++
		skus[key] = models.SkuRecord{
			ID:    strconv.Itoa(skuID),
			Price: parseFloat(entry.Price, 0),
			Stock: parseFloat(entry.Stock, 0),
		}
	}

	// --- 4. Images (thumbnail mirrors the url at this layer) ---
	images := make([]models.ImagePayload, len(form.Images))
	for i, img := range form.Images {
		images[i] = models.ImagePayload{
			URL:       img.URL,
			Type:      img.Type,
			Key:       img.Key,
			Thumbnail: img.URL,
			FileName:  img.FileName,
		}
	}

	// --- 5. Attrs: one single-entry map per row, order kept so
	// duplicate keys across rows stay distinguishable ---
	attrs := make([]map[string]string, len(form.Attributes))
	for i, row := range form.Attributes {
		attrs[i] = map[string]string{row.Key: row.Value}
	}

	return &models.ProductPayload{
		Name:        form.Name,
		Description: form.Description,
		Location:    form.Location,

		Stock:            parseFloat(form.Stock, 0),
		Moq:              parseMoq(form.Moq),
		LocalDeliveryFee: parseFloat(form.LocalDeliveryFee, 0),
		IntlDeliveryFee:  parseFloat(form.IntlDeliveryFee, 0),

		PropsOrder: propsOrder,
		Variants:   variants,
		Skus:       skus,

		SkuPropHeaders: propsOrder,
		SkuPropRows:    combos,
		PropsInfoTable: combos,

		Image:  images[0].URL,
		Images: images,
		Attrs:  attrs,
	}, nil
}

// parseFloat mirrors the form's lenient numeric fields: anything that
// does not parse becomes the fallback instead of an error. Required
// fields are rejected upstream by the form schema before this runs.
func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

// An untouched MOQ means "no minimum", which the backend stores as 1;
// a present but unparsable value coerces to 0 like the other fields.
func parseMoq(s string) float64 {
	if strings.TrimSpace(s) == "" {
		return 1
	}
	return parseFloat(s, 0)
}
