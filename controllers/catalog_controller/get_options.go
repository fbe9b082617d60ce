package catalog_controller

import (
	"net/http"

	"github.com/RBazelais/BoltBucket/catalog"
	"github.com/RBazelais/BoltBucket/models"
	"github.com/RBazelais/BoltBucket/services"
	"github.com/gin-gonic/gin"
)

var (
	optionCatalog *catalog.Catalog
	compatChecker *services.Checker
)

// Init hands the controller its immutable catalog and rule checker. Called
// once from main before routes are registered.
func Init(cat *catalog.Catalog, checker *services.Checker) {
	optionCatalog = cat
	compatChecker = checker
}

// GetOptions godoc
// @Summary List the full option catalog
// @Description Returns every customization category with its ordered options
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string][]catalog.Option
// @Router /api/options [get]
func GetOptions(c *gin.Context) {
	out := make(map[string][]catalog.Option)
	for _, category := range optionCatalog.Categories() {
		out[category] = optionCatalog.ListOptions(category)
	}
	c.JSON(http.StatusOK, out)
}

// GetOptionsByCategory godoc
// @Summary List options for one category
// @Tags Catalog
// @Produce json
// @Param category path string true "Category name" Enums(exterior, roof, wheels, interior)
// @Success 200 {array} catalog.Option
// @Failure 404 {object} models.ErrorBody
// @Router /api/options/{category} [get]
func GetOptionsByCategory(c *gin.Context) {
	category := c.Param("category")
	options := optionCatalog.ListOptions(category)
	if options == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Unknown category"))
		return
	}
	c.JSON(http.StatusOK, options)
}
