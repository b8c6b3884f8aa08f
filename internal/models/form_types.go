package models

// VariantProperty is one axis of product variation (e.g. "Color").
// The value order is meaningful: it drives the display order and the
// order SKU combinations are generated in.
type VariantProperty struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SkuFormEntry holds the price/stock for one combination exactly as
// the user typed it. Either string may be empty or non-numeric while
// the form is still being edited.
type SkuFormEntry struct {
	Price string `json:"price"`
	Stock string `json:"stock"`
}

// AttributeRow is one key/value row of the free-form attribute table.
// Rows with the same key stay distinguishable by position.
type AttributeRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ImageFile is one entry of the form's image list.
type ImageFile struct {
	URL      string `json:"url"`
	Type     string `json:"type"`
	Key      string `json:"key"`
	FileName string `json:"fileName"`
}

// ProductForm is the in-memory, editable product model. The edit
// screen exclusively owns it for the duration of one session: created
// empty for a new product, or seeded from a fetched ProductPayload.
type ProductForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`

	// Numeric fields are kept as strings while editing.
	Stock            string `json:"stock"`
	Moq              string `json:"moq"`
	LocalDeliveryFee string `json:"localDeliveryFee"`
	IntlDeliveryFee  string `json:"intlDeliveryFee"`

	VariantProperties []VariantProperty `json:"variantProperties"`

	// SkuMap is sparse: keyed by generated SKU key, it only holds the
	// combinations the user actually filled in.
	SkuMap map[string]SkuFormEntry `json:"skuMap"`

	Images     []ImageFile    `json:"images"`
	Attributes []AttributeRow `json:"attributes"`
}
