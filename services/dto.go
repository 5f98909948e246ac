package services

import (
	"time"
)

// Response records returned to the HTTP layer. Counts and isFollowing
// are derived per request, never stored.

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"displayName"`
	Email          string `json:"email"`
	AvatarUrl      string `json:"avatarUrl"`
	FollowersCount int64  `json:"followersCount"`
	FollowingCount int64  `json:"followingCount"`
	PostsCount     int64  `json:"postsCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

type UpdateUserRequest struct {
	DisplayName string `json:"displayName"`
	AvatarUrl   string `json:"avatarUrl"`
}

type PostResponse struct {
	ID            uint      `json:"id"`
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"displayName"`
	UserAvatarUrl string    `json:"userAvatarUrl"`
	ImageUrl      string    `json:"imageUrl"`
	Caption       string    `json:"caption"`
	Hashtags      []string  `json:"hashtags"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreatePostRequest struct {
	ImageUrl string `json:"imageUrl" binding:"required"`
	Caption  string `json:"caption"`
}

type RegisterRequest struct {
	Username    string `json:"userName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

type AuthResponse struct {
	Succeeded bool          `json:"succeeded"`
	Token     string        `json:"token,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	Message   string        `json:"message"`
}
