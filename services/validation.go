package services

import "github.com/spf13/cast"

// ValidationResult is the outcome of a shape check. Error is set only when OK
// is false and carries the exact message the client surfaces.
type ValidationResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ItemPayload is the slice of a create payload the shape gate looks at. Price
// and CategoryImages are untyped because clients have sent numbers, numeric
// strings and arbitrary JSON for them.
type ItemPayload struct {
	Name           string
	Price          any
	CategoryImages any
}

// ValidateShape checks that a create/update payload is structurally
// well-formed. The checks run in order and stop at the first failure. This is
// a shape gate only: it does not verify that selected option ids exist in the
// catalog. That is the compatibility checker's territory.
func ValidateShape(p ItemPayload) ValidationResult {
	if p.Name == "" {
		return ValidationResult{Error: "Name is required"}
	}

	// A zero price is rejected along with non-numeric ones.
	price, err := cast.ToFloat64E(p.Price)
	if p.Price == nil || err != nil || price == 0 {
		return ValidationResult{Error: "Price is required and must be a number"}
	}

	if !truthy(p.CategoryImages) {
		return ValidationResult{Error: "category_images is required"}
	}

	return ValidationResult{OK: true}
}

// truthy mirrors how the original client treated the field: absent, empty
// string, zero and false are missing; any object, even an empty one, counts
// as present.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return true
	}
}
