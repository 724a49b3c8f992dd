// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "s3m/swagger" // Import generated swagger docs

	"s3m/internal/handler"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	PresignHandler *handler.PresignHandler

	// EnableEndpoints controls whether the /api/s3m routes are registered
	// at all. When false the routes do not exist (404, not 403).
	EnableEndpoints bool
}

// Setup creates and configures the Gin router. The route table is built
// once here; there is no runtime toggling.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.EnableEndpoints {
		api := r.Group("/api/s3m")
		{
			api.GET("/upload", cfg.PresignHandler.Upload)
			api.GET("/download", cfg.PresignHandler.Download)
		}
	}

	return r
}
