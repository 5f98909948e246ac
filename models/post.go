package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string         `gorm:"not null;type:uuid" json:"userId"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	ImageUrl  string         `json:"imageUrl"`
	Caption   string         `json:"caption" gorm:"type:text"`
	Hashtags  pq.StringArray `json:"hashtags" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
