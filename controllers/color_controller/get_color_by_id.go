package color_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GetColorByID godoc
// @Summary Get a single color
// @Tags Colors
// @Produce json
// @Param id path int true "Color ID"
// @Success 200 {object} models.Color
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 409 {object} models.ErrorBody
// @Router /api/colors/{id} [get]
func GetColorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid color ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var col models.Color
	err = config.Pool.QueryRow(ctx, `
		SELECT id, name, hex_code, price_adjustment, is_metallic, is_available, created_at
		FROM colors
		WHERE id = $1 AND is_available = true`, id).
		Scan(&col.ID, &col.Name, &col.HexCode, &col.PriceAdjustment,
			&col.IsMetallic, &col.IsAvailable, &col.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Color not found"))
			return
		}
		log.Printf("[colors] get %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, col)
}
