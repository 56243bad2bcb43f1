package router

import (
	"github.com/gin-gonic/gin"

	"billex/internal/config"
	"billex/internal/handler"
	"billex/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, billH *handler.BillHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/health", healthH.Check)
	r.POST("/extract-bill-data", billH.Extract)

	return r
}
