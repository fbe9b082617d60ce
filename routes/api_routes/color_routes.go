package api_routes

import (
	"github.com/RBazelais/BoltBucket/controllers/color_controller"
	"github.com/gin-gonic/gin"
)

func SetupColorRoutes(rg *gin.RouterGroup) {
	colors := rg.Group("/colors")

	colors.GET("", color_controller.GetColors)
	colors.GET("/:id", color_controller.GetColorByID)
}
