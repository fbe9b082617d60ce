package api_routes

import (
	"github.com/RBazelais/BoltBucket/controllers/item_controller"
	"github.com/gin-gonic/gin"
)

// SetupItemRoutes registers the items CRUD surface. Update is reachable via
// both PUT and PATCH; either way it is a partial, whitelisted update.
func SetupItemRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")

	items.GET("", item_controller.GetItems)
	items.GET("/:id", item_controller.GetItemByID)
	items.POST("", item_controller.CreateItem)
	items.PUT("/:id", item_controller.UpdateItem)
	items.PATCH("/:id", item_controller.UpdateItem)
	items.DELETE("/:id", item_controller.DeleteItem)
}
