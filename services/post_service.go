package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/peer-pixels/api-go/models"
	"github.com/peer-pixels/api-go/repositories"
)

const (
	defaultFeedPageSize = 10
	maxFeedPageSize     = 50
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

type PostService struct {
	uow *repositories.UnitOfWork
}

func NewPostService(uow *repositories.UnitOfWork) *PostService {
	return &PostService{uow: uow}
}

// CreatePost inserts the post and returns it shaped with the owner's
// public fields. Posts are immutable once created.
func (s *PostService) CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*PostResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id cannot be empty")
	}

	post := models.Post{
		UserID:   userID,
		ImageUrl: req.ImageUrl,
		Caption:  req.Caption,
		Hashtags: extractHashtags(req.Caption),
	}

	err := s.uow.WithinTransaction(ctx, func(tx *repositories.UnitOfWork) error {
		return tx.Posts.Create(&post)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPostByID(post.ID)
}

func (s *PostService) GetPostByID(id uint) (*PostResponse, error) {
	post, err := s.uow.Posts.GetWithUser(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return mapPostToResponse(post)
}

func (s *PostService) GetPostsByUserID(userID string) ([]PostResponse, error) {
	if userID == "" {
		return []PostResponse{}, nil
	}

	posts, err := s.uow.Posts.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return mapPostsToResponses(posts)
}

// GetFeedPosts pages through posts authored by accounts userID follows.
// page and pageSize below 1 fall back to 1 and 10; pageSize is capped
// at 50 to keep a single request from draining the table.
func (s *PostService) GetFeedPosts(userID string, page, pageSize int) ([]PostResponse, error) {
	if userID == "" {
		return []PostResponse{}, nil
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultFeedPageSize
	}
	if pageSize > maxFeedPageSize {
		pageSize = maxFeedPageSize
	}

	skip := (page - 1) * pageSize
	posts, err := s.uow.Posts.GetFeed(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return mapPostsToResponses(posts)
}

// mapPostToResponse fails if the owner row did not load; the foreign
// key makes that unreachable short of store corruption.
func mapPostToResponse(post *models.Post) (*PostResponse, error) {
	if post.User.ID == "" {
		return nil, fmt.Errorf("post %d references user %q that cannot be resolved", post.ID, post.UserID)
	}

	return &PostResponse{
		ID:            post.ID,
		UserID:        post.UserID,
		Username:      post.User.Username,
		DisplayName:   post.User.DisplayName,
		UserAvatarUrl: post.User.AvatarUrl,
		ImageUrl:      post.ImageUrl,
		Caption:       post.Caption,
		Hashtags:      post.Hashtags,
		CreatedAt:     post.CreatedAt,
	}, nil
}

func mapPostsToResponses(posts []models.Post) ([]PostResponse, error) {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		response, err := mapPostToResponse(&posts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func extractHashtags(caption string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(caption, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	hashtags := make([]string, 0, len(matches))
	for _, match := range matches {
		tag := strings.ToLower(match[1])
		if !seen[tag] {
			seen[tag] = true
			hashtags = append(hashtags, tag)
		}
	}
	return hashtags
}
