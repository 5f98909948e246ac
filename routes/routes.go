package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/controllers"
	"github.com/peer-pixels/api-go/repositories"
	"github.com/peer-pixels/api-go/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	uow := repositories.NewUnitOfWork(db)

	userService := services.NewUserService(uow)
	postService := services.NewPostService(uow)
	followService := services.NewFollowService(uow)
	authService := services.NewAuthService(uow, userService)
	mediaService := services.NewMediaService()

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService, followService)
	postController := controllers.NewPostController(postService)
	uploadController := controllers.NewUploadController(mediaService)

	api := r.Group("/api")
	{
		SetupAuthRoutes(api, authController)
		SetupUserRoutes(api, userController)
		SetupPostRoutes(api, postController)
		SetupUploadRoutes(api, uploadController)
	}
}
