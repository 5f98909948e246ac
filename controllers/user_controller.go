package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/services"
	"github.com/peer-pixels/api-go/utils"
)

type UserController struct {
	UserService   *services.UserService
	FollowService *services.FollowService
}

func NewUserController(userService *services.UserService, followService *services.FollowService) *UserController {
	return &UserController{UserService: userService, FollowService: followService}
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID cannot be empty"})
		return
	}

	user, err := uc.UserService.GetUserByID(id, utils.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
		return
	}

	user, err := uc.UserService.GetUserByUsername(username, utils.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserFollowers(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID cannot be empty"})
		return
	}

	followers, err := uc.UserService.GetUserFollowers(id, utils.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}

	c.JSON(http.StatusOK, followers)
}

func (uc *UserController) GetUserFollowing(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID cannot be empty"})
		return
	}

	following, err := uc.UserService.GetUserFollowing(id, utils.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following users"})
		return
	}

	c.JSON(http.StatusOK, following)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := uc.UserService.UpdateUser(user.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (uc *UserController) FollowUser(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	targetID := c.Param("id")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID to follow cannot be empty"})
		return
	}
	if user.UserID == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Users cannot follow themselves"})
		return
	}

	followed, err := uc.FollowService.FollowUser(user.UserID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}
	if !followed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully followed user"})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	targetID := c.Param("id")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID to unfollow cannot be empty"})
		return
	}

	unfollowed, err := uc.FollowService.UnfollowUser(user.UserID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}
	if !unfollowed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully unfollowed user"})
}
