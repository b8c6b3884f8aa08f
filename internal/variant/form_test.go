package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipora/console-golang/internal/models"
	"github.com/shipora/console-golang/internal/variant"
)

func basePayload() *models.ProductPayload {
	return &models.ProductPayload{
		ID:          "812",
		Name:        "Canvas Tote",
		Description: "Everyday canvas tote bag",
		Location:    "Kuala Lumpur",

		Stock:            25,
		Moq:              2,
		LocalDeliveryFee: 5,
		IntlDeliveryFee:  12.5,

		PropsOrder: []string{"color", "size"},
		Variants: map[string][]models.VariantValue{
			"color": {{ID: "0", Text: "Red"}, {ID: "1", Text: "Blue"}},
			"size":  {{ID: "0", Text: "S"}, {ID: "1", Text: "M"}},
		},
		Skus: map[string]models.SkuRecord{
			"red_s":  {ID: "1", Price: 10.5, Stock: 3},
			"blue_m": {ID: "2", Price: 13, Stock: 6},
		},

		Image: "https://cdn.example.com/tote-1.jpg",
		Images: []models.ImagePayload{
			{URL: "https://cdn.example.com/tote-1.jpg", Type: "image", Key: "a", Thumbnail: "https://cdn.example.com/tote-1.jpg", FileName: "x.jpg"},
			{URL: "https://cdn.example.com/tote.mp4", Type: "video", Key: "b", Thumbnail: "https://cdn.example.com/tote.mp4", FileName: "x.mp4"},
			{URL: "https://cdn.example.com/tote-2.jpg", Type: "image", Key: "c", Thumbnail: "https://cdn.example.com/tote-2.jpg", FileName: "y.jpg"},
		},
		Attrs: []map[string]string{
			{"material": "canvas"},
			{"strap": "leather"},
		},
	}
}

func TestSeedForm(t *testing.T) {
	t.Parallel()

	form, err := variant.SeedForm(basePayload())
	require.NoError(t, err)

	assert.Equal(t, []models.VariantProperty{
		{Name: "color", Values: []string{"Red", "Blue"}},
		{Name: "size", Values: []string{"S", "M"}},
	}, form.VariantProperties)

	assert.Equal(t, map[string]models.SkuFormEntry{
		"red_s":  {Price: "10.5", Stock: "3"},
		"blue_m": {Price: "13", Stock: "6"},
	}, form.SkuMap)

	assert.Equal(t, []models.AttributeRow{
		{Key: "material", Value: "canvas"},
		{Key: "strap", Value: "leather"},
	}, form.Attributes)

	assert.Equal(t, "25", form.Stock)
	assert.Equal(t, "2", form.Moq)
	assert.Equal(t, "5", form.LocalDeliveryFee)
	assert.Equal(t, "12.5", form.IntlDeliveryFee)
}

func TestSeedFormImageReconstruction(t *testing.T) {
	t.Parallel()

	form, err := variant.SeedForm(basePayload())
	require.NoError(t, err)

	// Video entries are dropped; filenames and keys are synthetic.
	require.Len(t, form.Images, 2)
	assert.Equal(t, models.ImageFile{
		URL:      "https://cdn.example.com/tote-1.jpg",
		Type:     "image",
		Key:      "812_0",
		FileName: "image_1.jpg",
	}, form.Images[0])
	assert.Equal(t, "812_1", form.Images[1].Key)
	assert.Equal(t, "image_2.jpg", form.Images[1].FileName)
}

func TestSeedFormIntegrityErrors(t *testing.T) {
	t.Parallel()

	t.Run("propsOrder without variants entry", func(t *testing.T) {
		t.Parallel()

		payload := basePayload()
		delete(payload.Variants, "size")

		_, err := variant.SeedForm(payload)
		var derr *variant.DataIntegrityError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "propsOrder", derr.Field)
	})

	t.Run("attr entry with two keys", func(t *testing.T) {
		t.Parallel()

		payload := basePayload()
		payload.Attrs = append(payload.Attrs, map[string]string{"a": "1", "b": "2"})

		_, err := variant.SeedForm(payload)
		var derr *variant.DataIntegrityError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "attrs", derr.Field)
	})

	t.Run("attr entry with no keys", func(t *testing.T) {
		t.Parallel()

		payload := basePayload()
		payload.Attrs = []map[string]string{{}}

		_, err := variant.SeedForm(payload)
		var derr *variant.DataIntegrityError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "attrs", derr.Field)
	})
}
