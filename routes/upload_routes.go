package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/controllers"
	"github.com/peer-pixels/api-go/middleware"
)

func SetupUploadRoutes(api *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := api.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/presign", uploadController.PresignPostImage)
		uploads.POST("/avatar", uploadController.PresignAvatar)
		uploads.POST("/confirm", uploadController.ConfirmUpload)
		// Object keys contain slashes, so deletion takes a catch-all.
		uploads.DELETE("/*key", uploadController.DeleteFile)
	}
}
