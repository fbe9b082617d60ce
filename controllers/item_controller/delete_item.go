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

// DeleteItem godoc
// @Summary Delete a custom car
// @Description Returns the removed record; deleting an id that does not exist is a 200 no-op
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} models.ErrorBody
// @Failure 409 {object} models.ErrorBody
// @Router /api/items/{id} [delete]
func DeleteItem(c *gin.Context) {
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
			// Nothing to delete; callers treat the empty body as not found.
			c.Status(http.StatusOK)
			return
		}
		log.Printf("[items] load %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	if err := config.DB.WithContext(ctx).Delete(&models.Item{}, id).Error; err != nil {
		log.Printf("[items] delete %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, item)
}
