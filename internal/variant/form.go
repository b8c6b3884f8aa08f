package variant

import (
	"fmt"
	"strconv"

	"github.com/shipora/console-golang/internal/models"
)

// SeedForm converts a fetched product payload back into the editable
// form that seeds an edit session.
//
// Image filenames and keys are regenerated (the uploaded originals
// are not stored), so that part of the reconstruction is lossy on
// purpose; both fields are cosmetic in this direction. Everything
// else round-trips: re-parsing the restored price/stock strings with
// the same parser BuildPayload uses reproduces the stored numbers.
func SeedForm(payload *models.ProductPayload) (*models.ProductForm, error) {
	// --- 1. Images: keep stills only, synthetic names and keys ---
	images := make([]models.ImageFile, 0, len(payload.Images))
	for _, img := range payload.Images {
		if img.Type != ImageTypeImage {
			continue
		}
		i := len(images)
		images = append(images, models.ImageFile{
			URL:      img.URL,
			Type:     img.Type,
			Key:      fmt.Sprintf("%s_%d", payload.ID, i),
			FileName: fmt.Sprintf("image_%d.jpg", i+1),
		})
	}

	// --- 2. Variant properties from propsOrder + variants ---
	props := make([]models.VariantProperty, len(payload.PropsOrder))
	for i, name := range payload.PropsOrder {
		vals, ok := payload.Variants[name]
		if !ok {
			return nil, &DataIntegrityError{
				Field:   "propsOrder",
				Message: fmt.Sprintf("property %q has no entry in variants", name),
			}
		}
		texts := make([]string, len(vals))
		for j, v := range vals {
			texts[j] = v.Text
		}
		props[i] = models.VariantProperty{Name: name, Values: texts}
	}

	// --- 3. Sparse sku map with canonical decimal strings ---
	skuMap := make(map[string]models.SkuFormEntry, len(payload.Skus))
	for key, rec := range payload.Skus {
		skuMap[key] = models.SkuFormEntry{
			Price: formatFloat(rec.Price),
			Stock: formatFloat(rec.Stock),
		}
	}

	// --- 4. Attribute rows from single-entry maps ---
	attrs := make([]models.AttributeRow, len(payload.Attrs))
	for i, m := range payload.Attrs {
		if len(m) != 1 {
			return nil, &DataIntegrityError{
				Field:   "attrs",
				Message: fmt.Sprintf("attrs[%d] has %d keys, want exactly 1", i, len(m)),
			}
		}
		for k, v := range m {
			attrs[i] = models.AttributeRow{Key: k, Value: v}
		}
	}

	return &models.ProductForm{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,

		Stock:            formatFloat(payload.Stock),
		Moq:              formatFloat(payload.Moq),
		LocalDeliveryFee: formatFloat(payload.LocalDeliveryFee),
		IntlDeliveryFee:  formatFloat(payload.IntlDeliveryFee),

		VariantProperties: props,
		SkuMap:            skuMap,
		Images:            images,
		Attributes:        attrs,
	}, nil
}

// formatFloat renders the shortest decimal string that parses back to
// the identical float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
