package repositories

import (
	"errors"

	"github.com/peer-pixels/api-go/models"
	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) GetFollow(followerID, followeeID string) (*models.Follow, error) {
	if followerID == "" || followeeID == "" {
		return nil, nil
	}

	var follow models.Follow
	err := r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

func (r *FollowRepository) FollowersCount(userID string) (int64, error) {
	if userID == "" {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) FollowingCount(userID string) (int64, error) {
	if userID == "" {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *FollowRepository) Delete(follow *models.Follow) error {
	return r.db.Delete(follow).Error
}
