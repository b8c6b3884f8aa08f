package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shipora/console-golang/internal/models"
	"github.com/shipora/console-golang/internal/variant"
)

// --- Inputs ---

type VariantPropertyInput struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}

type SkuEntryInput struct {
	Price string `json:"price"`
	Stock string `json:"stock"`
}

type AttributeInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type ImageInput struct {
	URL      string `json:"url" binding:"required,url"`
	Type     string `json:"type"`
	Key      string `json:"key"`
	FileName string `json:"fileName"`
}

// BuildPayloadInput mirrors the editable product form. The numeric
// string fields carry the "numeric" rule so a present-but-garbage
// value is rejected here instead of being coerced to 0 downstream;
// empty means untouched and passes through.
type BuildPayloadInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`

	Stock            string `json:"stock" binding:"omitempty,numeric"`
	Moq              string `json:"moq" binding:"omitempty,numeric"`
	LocalDeliveryFee string `json:"localDeliveryFee" binding:"omitempty,numeric"`
	IntlDeliveryFee  string `json:"intlDeliveryFee" binding:"omitempty,numeric"`

	VariantProperties []VariantPropertyInput   `json:"variantProperties" binding:"dive"`
	SkuMap            map[string]SkuEntryInput `json:"skuMap"`
	Images            []ImageInput             `json:"images" binding:"required,min=1,dive"`
	Attributes        []AttributeInput         `json:"attributes" binding:"dive"`
}

func (in *BuildPayloadInput) toForm() *models.ProductForm {
	form := &models.ProductForm{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,

		Stock:            in.Stock,
		Moq:              in.Moq,
		LocalDeliveryFee: in.LocalDeliveryFee,
		IntlDeliveryFee:  in.IntlDeliveryFee,

		SkuMap: make(map[string]models.SkuFormEntry, len(in.SkuMap)),
	}

	for _, p := range in.VariantProperties {
		form.VariantProperties = append(form.VariantProperties, models.VariantProperty{Name: p.Name, Values: p.Values})
	}
	for key, e := range in.SkuMap {
		form.SkuMap[key] = models.SkuFormEntry{Price: e.Price, Stock: e.Stock}
	}
	for _, img := range in.Images {
		form.Images = append(form.Images, models.ImageFile{URL: img.URL, Type: img.Type, Key: img.Key, FileName: img.FileName})
	}
	for _, a := range in.Attributes {
		form.Attributes = append(form.Attributes, models.AttributeRow{Key: a.Key, Value: a.Value})
	}
	return form
}

// BuildProductPayload is the handler for POST /v1/products/payload.
// It turns the submitted form into the backend's create/update body.
func (h *Handlers) BuildProductPayload(c *gin.Context) {
	var input BuildPayloadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := variant.BuildPayload(input.toForm())
	if err != nil {
		renderTransformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": payload})
}

// SeedProductForm is the handler for POST /v1/products/form. It turns
// a fetched product payload into the initial values for the edit
// screen.
func (h *Handlers) SeedProductForm(c *gin.Context) {
	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := variant.SeedForm(&payload)
	if err != nil {
		renderTransformError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

// renderTransformError maps the variant package's error kinds onto
// status codes: bad form input is the caller's 400, an inconsistent
// persisted record is a 422 the console shows as "contact support".
func renderTransformError(c *gin.Context, err error) {
	switch err.(type) {
	case *variant.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case *variant.DataIntegrityError:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transform failed"})
	}
}
