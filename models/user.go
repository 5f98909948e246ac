package models

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"` // Empty for federated-only accounts
	DisplayName  string    `json:"display_name"`
	AvatarUrl    string    `json:"avatar_url"`
	Posts        []Post    `json:"posts" gorm:"foreignKey:UserID"`
	Followers    []Follow  `json:"followers" gorm:"foreignKey:FolloweeID"`
	Following    []Follow  `json:"following" gorm:"foreignKey:FollowerID"`
}
