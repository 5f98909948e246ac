package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/peer-pixels/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func parseBearerToken(authHeader string) (*utils.UserClaims, bool) {
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, false
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &utils.UserClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
	}, true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		userClaims, ok := parseBearerToken(authHeader)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a bearer
// token is present but lets anonymous requests through. Profile reads
// use it for the viewer-relative isFollowing flag.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if userClaims, ok := parseBearerToken(authHeader); ok {
				c.Set(string(utils.UserContextKey), userClaims)
			}
		}

		c.Next()
	}
}
