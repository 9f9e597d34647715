package routes

import (
	"newvision/internal/controllers"
	"newvision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(router *gin.Engine, settingsController *controllers.SettingsController) {
	router.GET("/api/settings", settingsController.GetSettings)
	router.GET("/api/youtube/channel-info", settingsController.GetChannelInfo)

	adminRoutes := router.Group("/api/settings")
	adminRoutes.Use(middleware.AuthMiddleware())
	{
		adminRoutes.PUT("", settingsController.UpdateSettings)
	}
}
