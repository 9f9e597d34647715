package routes

import (
	"newvision/internal/controllers"
	"newvision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNewsRoutes(router *gin.Engine, newsController *controllers.NewsController) {
	newsRoutes := router.Group("/api/news")
	{
		newsRoutes.GET("", newsController.GetNews)
		newsRoutes.GET("/flash", newsController.GetFlashNews)
		newsRoutes.GET("/featured", newsController.GetFeaturedNews)
		newsRoutes.GET("/trending", newsController.GetTrendingNews)
		newsRoutes.GET("/:id", newsController.GetNewsByID)
		newsRoutes.GET("/:id/related", newsController.GetRelatedNews)
	}

	adminRoutes := router.Group("/api/news")
	adminRoutes.Use(middleware.AuthMiddleware())
	{
		adminRoutes.POST("", newsController.CreateNews)
		adminRoutes.PUT("/reorder", newsController.ReorderNews)
		adminRoutes.PUT("/:id", newsController.UpdateNews)
		adminRoutes.DELETE("/:id", newsController.DeleteNews)
		adminRoutes.POST("/extract-image", newsController.ExtractImage)
	}
}
