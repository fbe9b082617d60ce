package item_controller

import (
	"log"
	"net/http"

	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/gin-gonic/gin"
)

// GetItems godoc
// @Summary List all custom cars
// @Description Returns every persisted car, oldest id first
// @Tags Items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 409 {object} models.ErrorBody
// @Router /api/items [get]
func GetItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items := make([]models.Item, 0)
	if err := config.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		log.Printf("[items] list failed: %v", err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, items)
}
