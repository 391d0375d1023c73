package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	internalapi "sitegen_ai_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *internalapi.APIHandler, limiter *internalapi.RateLimiter) {

	// --- Site Lifecycle ---
	siteGroup := router.Group("/site")
	{
		// The planning endpoint is the only one that calls the generative
		// service, so it alone sits behind the rate limiter.
		siteGroup.POST("/plan", limiter.Middleware(), h.PlanSite)
		siteGroup.GET("/:token", h.GetSite)
		siteGroup.PATCH("/:token/sections", h.UpdateSection)
	}

	// --- Public Preview ---
	router.GET("/share/:slug", h.GetSharedSite)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
