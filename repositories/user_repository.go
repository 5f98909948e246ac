package repositories

import (
	"errors"

	"github.com/peer-pixels/api-go/models"
	"gorm.io/gorm"
)

// UserRepository holds the hand-written queries for the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}

	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, nil
	}

	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, nil
	}

	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetWithDetails eager loads the user's posts and both sides of the
// follow edge set in one call.
func (r *UserRepository) GetWithDetails(id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}

	var user models.User
	err := r.db.
		Preload("Posts").
		Preload("Followers").
		Preload("Following").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetFollowers(userID string) ([]models.User, error) {
	if userID == "" {
		return []models.User{}, nil
	}

	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetFollowing(userID string) ([]models.User, error) {
	if userID == "" {
		return []models.User{}, nil
	}

	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	if followerID == "" || followeeID == "" {
		return false, nil
	}

	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
