package item_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetItemByID godoc
// @Summary Get a single custom car
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 409 {object} models.ErrorBody
// @Router /api/items/{id} [get]
func GetItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.Item
	if err := config.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Item not found"))
			return
		}
		log.Printf("[items] get %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, item)
}
