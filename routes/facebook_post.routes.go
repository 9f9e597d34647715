package routes

import (
	"newvision/internal/controllers"
	"newvision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFacebookPostRoutes(router *gin.Engine, postController *controllers.FacebookPostController) {
	postRoutes := router.Group("/api/facebook-posts")
	{
		postRoutes.GET("", postController.GetPosts)
	}

	adminRoutes := router.Group("/api/facebook-posts")
	adminRoutes.Use(middleware.AuthMiddleware())
	{
		adminRoutes.POST("", postController.CreatePost)
		adminRoutes.DELETE("/:id", postController.DeletePost)
	}
}
