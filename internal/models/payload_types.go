package models

// VariantValue is one persisted value of a variant property. ID is a
// stable per-value index assigned at creation (stringified, 0-based).
type VariantValue struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SkuRecord is the persisted pricing record for one SKU key. IDs are
// sequential and 1-based, assigned in combination-generation order.
type SkuRecord struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

// ImagePayload is one entry of the persisted image list. Thumbnail is
// always the url itself; no separate thumbnail is generated here.
type ImagePayload struct {
	URL       string `json:"url"`
	Type      string `json:"type"`
	Key       string `json:"key"`
	Thumbnail string `json:"thumbnail"`
	FileName  string `json:"fileName"`
}

// ProductPayload is the backend's canonical product shape: the body
// of the create/update call, and the shape of the product response.
type ProductPayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`

	Stock            float64 `json:"stock"`
	Moq              float64 `json:"moq"`
	LocalDeliveryFee float64 `json:"localDeliveryFee"`
	IntlDeliveryFee  float64 `json:"intlDeliveryFee"`

	// PropsOrder holds the lower-cased property names in form order;
	// Variants maps each of those names to its value records.
	PropsOrder []string                  `json:"propsOrder"`
	Variants   map[string][]VariantValue `json:"variants"`
	Skus       map[string]SkuRecord      `json:"skus"`

	// The generated combination grid, kept in generation order.
	// PropsInfoTable repeats SkuPropRows for a separate consumer.
	SkuPropHeaders []string   `json:"skuPropHeaders"`
	SkuPropRows    [][]string `json:"skuPropRows"`
	PropsInfoTable [][]string `json:"propsInfoTable"`

	Image  string              `json:"image"`
	Images []ImagePayload      `json:"images"`
	Attrs  []map[string]string `json:"attrs"`
}
