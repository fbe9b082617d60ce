package services

import (
	"math"

	"github.com/spf13/cast"
)

// ComputeTotal returns basePrice plus the price delta of every selected
// option. It is deliberately lenient: a base price that does not parse as a
// number counts as 0, and absent selections contribute nothing. The same
// function prices live in-memory selections (create/edit flow) and persisted
// snapshot lists (detail view), so callers never need to normalize first
// beyond building Selections.
func ComputeTotal(basePrice any, selections map[string]Selection) float64 {
	total, err := cast.ToFloat64E(basePrice)
	if err != nil || math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	for _, sel := range selections {
		total += sel.PriceSum()
	}
	return total
}
