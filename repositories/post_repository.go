package repositories

import (
	"errors"

	"github.com/peer-pixels/api-go/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetWithUser fetches a post together with its owning user row for
// response shaping.
func (r *PostRepository) GetWithUser(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetByUserID(userID string) ([]models.Post, error) {
	if userID == "" {
		return []models.Post{}, nil
	}

	var posts []models.Post
	err := r.db.
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetFeed returns one page of posts authored by the accounts userID
// follows, newest first with id as the tie-break so pagination stays
// deterministic when timestamps collide.
//
// The followee set is resolved first: a viewer following nobody gets an
// empty page without touching the posts table at all.
func (r *PostRepository) GetFeed(userID string, skip, take int) ([]models.Post, error) {
	if userID == "" {
		return []models.Post{}, nil
	}

	var followingIDs []string
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &followingIDs).Error
	if err != nil {
		return nil, err
	}

	if len(followingIDs) == 0 {
		return []models.Post{}, nil
	}

	var posts []models.Post
	err = r.db.
		Preload("User").
		Where("user_id IN ?", followingIDs).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(take).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) CountByUserID(userID string) (int64, error) {
	if userID == "" {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
