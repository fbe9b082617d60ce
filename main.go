// @title BoltBucket API
// @version 1.0
// @description Custom car catalog and customization backend
// @host localhost:3001
// @BasePath /
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/RBazelais/BoltBucket/catalog"
	"github.com/RBazelais/BoltBucket/config"
	"github.com/RBazelais/BoltBucket/controllers/catalog_controller"
	"github.com/RBazelais/BoltBucket/controllers/item_controller"
	_ "github.com/RBazelais/BoltBucket/docs"
	"github.com/RBazelais/BoltBucket/middleware"
	"github.com/RBazelais/BoltBucket/routes/api_routes"
	"github.com/RBazelais/BoltBucket/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection (rate limiter)
	config.ConnectRedis()

	// The option catalog and rule table are built once and handed to the
	// controllers; nothing reads them as ambient globals.
	optionCatalog := catalog.Default()
	checker := services.NewChecker(catalog.DefaultRules())
	item_controller.Init(checker)
	catalog_controller.Init(optionCatalog, checker)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")
	api.Use(middleware.RateLimiter(100, time.Minute))

	api_routes.SetupItemRoutes(api)
	api_routes.SetupColorRoutes(api)
	api_routes.SetupCatalogRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:3001")
	router.Run(":3001")
}
