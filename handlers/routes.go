// Package handlers provides HTTP request handlers for the ID codec service.
package handlers

import (
	"github.com/gin-gonic/gin"

	"go-sqid/config"
)

// RegisterRoutes sets up all the routes for the ID codec service.
// It registers all the API endpoints with their respective handlers,
// and applies middleware such as rate limiting, CORS and request ids.
func RegisterRoutes(r *gin.Engine, handler IDHandlerInterface, config *config.Config) {
	// Apply cross-cutting middleware to all routes
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())

	// API routes
	v1 := r.Group("/api/v1")
	if !config.DisableRateLimit {
		v1.Use(handler.RateLimitMiddleware())
	}
	{
		// Identifier codec routes
		ids := v1.Group("/ids")
		{
			ids.POST("/encode", handler.EncodeID)
			ids.GET("/:id", handler.DecodeID)
		}
	}

	// Health check route
	if !config.DisableRateLimit {
		r.GET("/health", handler.RateLimitMiddleware(), handler.HealthCheck)
	} else {
		r.GET("/health", handler.HealthCheck)
	}
}
