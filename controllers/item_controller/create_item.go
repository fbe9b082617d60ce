package item_controller

import (
	"log"
	"net/http"

	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/RBazelais/BoltBucket/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

var compatChecker *services.Checker

// Init wires the compatibility checker that the write endpoints gate on.
// Called once from main before routes are registered.
func Init(checker *services.Checker) {
	compatChecker = checker
}

// CreateItem godoc
// @Summary Create a custom car
// @Description Persist a new car build with its per-category option snapshots
// @Tags Items
// @Accept json
// @Produce json
// @Param item body models.CreateItemRequest true "Car fields (name, price and category_images required)"
// @Success 201 {object} models.Item
// @Failure 400 {object} models.ErrorBody
// @Failure 409 {object} models.ErrorBody
// @Router /api/items [post]
func CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request: "+err.Error()))
		return
	}

	// Step 1: shape gate, same messages the client shows as alerts
	var categoryImages any
	if req.CategoryImages != nil {
		categoryImages = req.CategoryImages
	}
	result := services.ValidateShape(services.ItemPayload{
		Name:           req.Name,
		Price:          req.Price,
		CategoryImages: categoryImages,
	})
	if !result.OK {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(result.Error))
		return
	}

	// Step 2: compatibility gate, before anything reaches the store
	cfg := services.Configuration{
		Model:      req.Model,
		Selections: services.NormalizeCategoryImages(req.CategoryImages),
	}
	if !compatChecker.IsCompatible(cfg) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Selected options are not compatible with this model"))
		return
	}

	// Step 3: defaults for everything optional
	price, _ := cast.ToFloat64E(req.Price)
	item := models.Item{
		Name:           req.Name,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Price:          price,
		Currency:       req.Currency,
		PricePoint:     req.PricePoint,
		Image:          req.Image,
		CategoryImages: req.CategoryImages,
		Images:         req.Images,
		Description:    req.Description,
		Tags:           req.Tags,
		Location:       req.Location,
		Condition:      req.Condition,
		SubmittedBy:    req.SubmittedBy,
		IsFeatured:     req.IsFeatured,
	}
	if item.Currency == "" {
		item.Currency = "USD"
	}
	if item.Images == nil {
		item.Images = models.ImageList{}
	}
	if item.Tags == nil {
		item.Tags = models.TagList{}
	}
	if req.Owner != nil {
		item.Owner = *req.Owner
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[items] create failed: %v", err)
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, item)
}
