package routes

import (
	"newvision/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	router.POST("/api/auth/login", authController.Login)
}
