package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	authorized := api.Group("")
	authorized.Use(JWTAuthMiddleware(h.cfg, h.logger))

	tracking := authorized.Group("/tracking")
	{
		tracking.POST("/location", h.saveLocation)
		tracking.POST("/motion", h.saveMotion)
		tracking.POST("/batch", h.saveBatch)
		tracking.GET("/history", h.getHistory)
		tracking.GET("/stats", h.getTrackingStats)
		tracking.GET("/timeline", h.getTimeline)
		tracking.GET("/distance", h.getDistance)
		tracking.GET("/frequent", h.getFrequentLocations)
	}

	authorized.GET("/consent", h.getConsent)
	authorized.POST("/consent", h.setConsent)

	trips := authorized.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
	}

	// Админские маршруты, доступ проверяется один раз на группу
	admin := authorized.Group("/admin")
	admin.Use(RequireAdmin(h.logger))
	{
		admin.DELETE("/users/:id", h.deleteUser)
		admin.POST("/users/bulk-delete", h.bulkDeleteUsers)
		admin.PUT("/users/:id/consent", h.overrideConsent)
		admin.GET("/statistics", h.getDatabaseStatistics)
		admin.POST("/geocoding/retry", h.scheduleGeocodingRetry)
		admin.POST("/cleanup", h.scheduleCleanup)
	}
}
