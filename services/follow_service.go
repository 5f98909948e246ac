package services

import (
	"errors"
	"fmt"

	"github.com/peer-pixels/api-go/models"
	"github.com/peer-pixels/api-go/repositories"
	"gorm.io/gorm"
)

type FollowService struct {
	uow *repositories.UnitOfWork
}

func NewFollowService(uow *repositories.UnitOfWork) *FollowService {
	return &FollowService{uow: uow}
}

// FollowUser creates the directed edge follower -> followee. It fails
// closed (false, nil) on a self-follow, a missing endpoint account, or
// an edge that already exists. The pre-check and insert are separate
// round trips; a concurrent duplicate insert lands on the unique index
// and is reported as false as well.
func (s *FollowService) FollowUser(followerID, followeeID string) (bool, error) {
	if followerID == "" {
		return false, fmt.Errorf("follower id cannot be empty")
	}
	if followeeID == "" {
		return false, fmt.Errorf("followee id cannot be empty")
	}

	if followerID == followeeID {
		return false, nil
	}

	follower, err := s.uow.Users.GetByID(followerID)
	if err != nil {
		return false, err
	}
	followee, err := s.uow.Users.GetByID(followeeID)
	if err != nil {
		return false, err
	}
	if follower == nil || followee == nil {
		return false, nil
	}

	existing, err := s.uow.Follows.GetFollow(followerID, followeeID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := s.uow.Follows.Create(&follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FollowService) UnfollowUser(followerID, followeeID string) (bool, error) {
	if followerID == "" {
		return false, fmt.Errorf("follower id cannot be empty")
	}
	if followeeID == "" {
		return false, fmt.Errorf("followee id cannot be empty")
	}

	follow, err := s.uow.Follows.GetFollow(followerID, followeeID)
	if err != nil {
		return false, err
	}
	if follow == nil {
		return false, nil
	}

	if err := s.uow.Follows.Delete(follow); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FollowService) IsFollowing(followerID, followeeID string) (bool, error) {
	if followerID == "" || followeeID == "" {
		return false, nil
	}
	return s.uow.Users.IsFollowing(followerID, followeeID)
}
