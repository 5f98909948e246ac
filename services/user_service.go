package services

import (
	"github.com/peer-pixels/api-go/repositories"
)

type UserService struct {
	uow *repositories.UnitOfWork
}

func NewUserService(uow *repositories.UnitOfWork) *UserService {
	return &UserService{uow: uow}
}

// GetUserByID shapes a profile relative to the viewing account.
// currentUserID may be empty for an anonymous viewer, in which case
// IsFollowing is always false. Returns nil, nil when the subject does
// not exist.
func (s *UserService) GetUserByID(id, currentUserID string) (*UserResponse, error) {
	if id == "" {
		return nil, nil
	}

	user, err := s.uow.Users.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	followersCount, err := s.uow.Follows.FollowersCount(id)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.uow.Follows.FollowingCount(id)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if currentUserID != "" {
		isFollowing, err = s.uow.Users.IsFollowing(currentUserID, id)
		if err != nil {
			return nil, err
		}
	}

	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		Email:          user.Email,
		AvatarUrl:      user.AvatarUrl,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		PostsCount:     int64(len(user.Posts)),
		IsFollowing:    isFollowing,
	}, nil
}

func (s *UserService) GetUserByUsername(username, currentUserID string) (*UserResponse, error) {
	if username == "" {
		return nil, nil
	}

	user, err := s.uow.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return s.GetUserByID(user.ID, currentUserID)
}

// UpdateUser merges only the non-empty fields of the patch into the
// profile; absent fields keep their stored values. Last writer wins.
func (s *UserService) UpdateUser(id string, req UpdateUserRequest) (*UserResponse, error) {
	if id == "" {
		return nil, nil
	}

	user, err := s.uow.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.AvatarUrl != "" {
		user.AvatarUrl = req.AvatarUrl
	}

	if err := s.uow.Users.Update(user); err != nil {
		return nil, err
	}

	return s.GetUserByID(id, id)
}

func (s *UserService) GetUserFollowers(userID, currentUserID string) ([]UserResponse, error) {
	if userID == "" {
		return []UserResponse{}, nil
	}

	followers, err := s.uow.Users.GetFollowers(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(followers))
	for _, follower := range followers {
		profile, err := s.GetUserByID(follower.ID, currentUserID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			responses = append(responses, *profile)
		}
	}
	return responses, nil
}

func (s *UserService) GetUserFollowing(userID, currentUserID string) ([]UserResponse, error) {
	if userID == "" {
		return []UserResponse{}, nil
	}

	following, err := s.uow.Users.GetFollowing(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(following))
	for _, followee := range following {
		profile, err := s.GetUserByID(followee.ID, currentUserID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			responses = append(responses, *profile)
		}
	}
	return responses, nil
}
