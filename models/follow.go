package models

import (
	"time"
)

// Follow is a directed edge: Follower follows Followee. The composite
// unique index keeps concurrent duplicate inserts out of the table.
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID string    `gorm:"not null;type:uuid;uniqueIndex:idx_follows_pair" json:"followerId"`
	FolloweeID string    `gorm:"not null;type:uuid;uniqueIndex:idx_follows_pair" json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`

	Follower User `gorm:"foreignKey:FollowerID"`
	Followee User `gorm:"foreignKey:FolloweeID"`
}
