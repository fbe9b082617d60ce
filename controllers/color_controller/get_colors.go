package color_controller

import (
	"log"
	"net/http"

	color_cache "github.com/RBazelais/BoltBucket/cache"
	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/gin-gonic/gin"
)

// GetColors godoc
// @Summary List available exterior colors
// @Description Returns available colors ordered by name. The listing is served from a short-lived in-process cache.
// @Tags Colors
// @Produce json
// @Success 200 {array} models.Color
// @Failure 409 {object} models.ErrorBody
// @Router /api/colors [get]
func GetColors(c *gin.Context) {
	if colors, ok := color_cache.GetList(); ok {
		c.JSON(http.StatusOK, colors)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.Pool.Query(ctx, `
		SELECT id, name, hex_code, price_adjustment, is_metallic, is_available, created_at
		FROM colors
		WHERE is_available = true
		ORDER BY name ASC`)
	if err != nil {
		log.Printf("[colors] list failed: %v", err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}
	defer rows.Close()

	colors := make([]models.Color, 0)
	for rows.Next() {
		var col models.Color
		if err := rows.Scan(&col.ID, &col.Name, &col.HexCode, &col.PriceAdjustment,
			&col.IsMetallic, &col.IsAvailable, &col.CreatedAt); err != nil {
			log.Printf("[colors] scan failed: %v", err)
			c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
			return
		}
		colors = append(colors, col)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	color_cache.SetList(colors)
	c.JSON(http.StatusOK, colors)
}
