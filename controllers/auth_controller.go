package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peer-pixels/api-go/services"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	result, err := ac.AuthService.Register(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed", "success": false})
		return
	}
	if !result.Succeeded {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message, "success": false})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	result, err := ac.AuthService.Login(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "success": false})
		return
	}
	if !result.Succeeded {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message, "success": false})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var req services.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	result, err := ac.AuthService.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google login failed", "success": false})
		return
	}
	if !result.Succeeded {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message, "success": false})
		return
	}

	c.JSON(http.StatusOK, result)
}
