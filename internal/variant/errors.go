package variant

import "fmt"

// ValidationError means the caller-supplied form violates a
// precondition of the transform: an empty image list, a property with
// no usable values, or two combinations colliding on one SKU key.
// The form layer surfaces these to the user; nothing is retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DataIntegrityError means a persisted product record is internally
// inconsistent (propsOrder naming a property missing from variants, a
// malformed attrs entry). It indicates a corrupt record, not bad user
// input, so it must not be silently skipped over.
type DataIntegrityError struct {
	Field   string
	Message string
}

func (e *DataIntegrityError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
