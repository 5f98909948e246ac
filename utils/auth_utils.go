package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GetUserID returns the authenticated subject id, or "" for an
// anonymous request behind the optional middleware.
func GetUserID(c *gin.Context) string {
	if user := GetUser(c); user != nil {
		return user.UserID
	}
	return ""
}
