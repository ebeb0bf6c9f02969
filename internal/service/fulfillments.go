package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

type FulfillmentRepo interface {
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	GetRequirementSize(ctx context.Context, requirementID int64) (int64, error)
	CountFulfillments(ctx context.Context, requirementID int64) (int64, error)
	AddFulfillment(ctx context.Context, requirementID, userID int64) error
	RemoveFulfillment(ctx context.Context, userID, requirementID int64) error
}

type FulfillmentService struct {
	repo FulfillmentRepo
}

func NewFulfillmentService(repo FulfillmentRepo) *FulfillmentService {
	return &FulfillmentService{repo: repo}
}

// Create records that the authenticated user fulfills a requirement.
// Only for oneself, only while the requirement has open slots.
func (s *FulfillmentService) Create(ctx context.Context, req model.CreateFulfillmentRequest, authUserID int64) (*model.FulfillmentResponse, error) {
	if err := AuthorizeUser(req.User, authUserID, "cannot add fullfillment for another user"); err != nil {
		return nil, err
	}

	size, err := s.repo.GetRequirementSize(ctx, req.Requirement)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: cannot find requirement: %d", ErrNotFound, req.Requirement)
		}
		return nil, err
	}

	existing, err := s.repo.CountFulfillments(ctx, req.Requirement)
	if err != nil {
		return nil, err
	}
	if existing >= size {
		return nil, fmt.Errorf("%w: maximum number of users for this requirement exceeded: %d", ErrConflict, req.Requirement)
	}

	if err := s.repo.AddFulfillment(ctx, req.Requirement, req.User); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: requirement already fulfilled by user", ErrConflict)
		}
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, req.User)
	if err != nil {
		return nil, err
	}

	return &model.FulfillmentResponse{Requirement: req.Requirement, User: *user}, nil
}

func (s *FulfillmentService) Delete(ctx context.Context, userID, requirementID, authUserID int64) error {
	if err := AuthorizeUser(userID, authUserID, "cannot remove fullfillment for another user"); err != nil {
		return err
	}
	return s.repo.RemoveFulfillment(ctx, userID, requirementID)
}
