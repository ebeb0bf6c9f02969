package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	UpdateUsername(ctx context.Context, userID int64, username string) error
	DeleteUser(ctx context.Context, userID int64) error
	ListUsedRequirements(ctx context.Context, creatorID int64) ([]model.UsedRequirement, error)
}

type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

// UsedRequirements returns the requirement usage report for the user's
// own events; self-service only.
func (s *UserService) UsedRequirements(ctx context.Context, userID, authUserID int64) ([]model.UsedRequirement, error) {
	if err := AuthorizeUser(userID, authUserID, "cannot get requirements of another user"); err != nil {
		return nil, err
	}
	return s.repo.ListUsedRequirements(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, userID, authUserID int64, upd model.UpdateUserRequest) error {
	if err := AuthorizeUser(userID, authUserID, "cannot update another user"); err != nil {
		return err
	}
	if upd.Username == nil {
		return fmt.Errorf("%w: at least one field must be filled out", ErrInvalidInput)
	}

	if err := s.repo.UpdateUsername(ctx, userID, *upd.Username); err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return err
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID, authUserID int64) error {
	if err := AuthorizeUser(userID, authUserID, "cannot delete another user"); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, userID)
}
