package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/controllers"
	"github.com/peer-pixels/api-go/middleware"
)

func SetupUserRoutes(api *gin.RouterGroup, userController *controllers.UserController) {
	users := api.Group("/users")

	// Profile reads resolve the viewer when a token is present but stay
	// open to anonymous callers.
	users.Use(middleware.OptionalAuthMiddleware())
	{
		users.GET("/:id", userController.GetUserByID)
		users.GET("/username/:username", userController.GetUserByUsername)
		users.GET("/:id/followers", userController.GetUserFollowers)
		users.GET("/:id/following", userController.GetUserFollowing)
	}

	protected := api.Group("/users")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("", userController.UpdateUser)
		protected.POST("/follow/:id", userController.FollowUser)
		protected.DELETE("/unfollow/:id", userController.UnfollowUser)
	}
}
