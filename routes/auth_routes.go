package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/controllers"
)

func SetupAuthRoutes(api *gin.RouterGroup, authController *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/google", authController.GoogleLogin)
	}
}
