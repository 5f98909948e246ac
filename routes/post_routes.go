package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/controllers"
	"github.com/peer-pixels/api-go/middleware"
)

func SetupPostRoutes(api *gin.RouterGroup, postController *controllers.PostController) {
	posts := api.Group("/posts")
	{
		posts.GET("/:id", postController.GetPostByID)
		posts.GET("/user/:userId", postController.GetPostsByUserID)
	}

	protected := api.Group("/posts")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/feed", postController.GetFeedPosts)
		protected.POST("", postController.CreatePost)
	}
}
