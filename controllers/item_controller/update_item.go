package item_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/RBazelais/BoltBucket/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// UpdateItem godoc
// @Summary Update a custom car
// @Description Partial update; only whitelisted fields are written, unknown fields are ignored. Registered for both PUT and PATCH.
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.UpdateItemRequest true "Fields to change"
// @Success 200 {object} models.Item
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 409 {object} models.ErrorBody
// @Router /api/items/{id} [patch]
func UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid item ID"))
		return
	}

	var input models.UpdateItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: the record must exist
	var item models.Item
	if err := config.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Item not found"))
			return
		}
		log.Printf("[items] load %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	// Step 2: compatibility gate when the proposed change touches the build
	if input.Model != nil || input.CategoryImages != nil {
		model := item.Model
		if input.Model != nil {
			model = *input.Model
		}
		images := item.CategoryImages
		if input.CategoryImages != nil {
			images = *input.CategoryImages
		}
		cfg := services.Configuration{
			Model:      model,
			Selections: services.NormalizeCategoryImages(images),
		}
		if !compatChecker.IsCompatible(cfg) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Selected options are not compatible with this model"))
			return
		}
	}

	// Step 3: build the update map from whitelisted, present fields only
	updates := make(map[string]interface{})

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Make != nil {
		updates["make"] = *input.Make
	}
	if input.Model != nil {
		updates["model"] = *input.Model
	}
	if input.Year != nil {
		updates["year"] = *input.Year
	}
	if input.Price != nil {
		price, err := cast.ToFloat64E(input.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Price is required and must be a number"))
			return
		}
		updates["price"] = price
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.PricePoint != nil {
		updates["price_point"] = *input.PricePoint
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.CategoryImages != nil {
		updates["category_images"] = *input.CategoryImages
	}
	if input.Images != nil {
		updates["images"] = *input.Images
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Tags != nil {
		updates["tags"] = *input.Tags
	}
	if input.Owner != nil {
		updates["owner"] = *input.Owner
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Condition != nil {
		updates["condition"] = *input.Condition
	}
	if input.SubmittedBy != nil {
		updates["submitted_by"] = *input.SubmittedBy
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("No valid fields to update"))
		return
	}

	// Step 4: single-statement write; submitted_on refreshes via autoUpdateTime
	if err := config.DB.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		log.Printf("[items] update %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	// Step 5: reload so the response reflects exactly what was stored
	if err := config.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		log.Printf("[items] reload %d failed: %v", id, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, item)
}
