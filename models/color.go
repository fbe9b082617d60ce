package models

import "time"

// Color is one row of the exterior colors table, exposed read-only through
// the /api/colors endpoints.
type Color struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	HexCode         string    `json:"hex_code"`
	PriceAdjustment float64   `json:"price_adjustment"`
	IsMetallic      bool      `json:"is_metallic"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
}
