package routes

import (
	"newvision/internal/controllers"
	"newvision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterVideoRoutes(router *gin.Engine, videoController *controllers.VideoController) {
	videoRoutes := router.Group("/api/videos")
	{
		videoRoutes.GET("", videoController.GetVideos)
	}

	adminRoutes := router.Group("/api/videos")
	adminRoutes.Use(middleware.AuthMiddleware())
	{
		adminRoutes.POST("", videoController.CreateVideo)
		adminRoutes.POST("/extract-details", videoController.ExtractVideoDetails)
		adminRoutes.DELETE("/:id", videoController.DeleteVideo)
	}
}
