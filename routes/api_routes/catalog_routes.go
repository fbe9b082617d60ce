package api_routes

import (
	"github.com/RBazelais/BoltBucket/controllers/catalog_controller"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(rg *gin.RouterGroup) {
	options := rg.Group("/options")
	options.GET("", catalog_controller.GetOptions)
	options.GET("/:category", catalog_controller.GetOptionsByCategory)

	rg.POST("/quote", catalog_controller.QuoteBuild)
}
