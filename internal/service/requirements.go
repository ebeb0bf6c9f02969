package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

type RequirementRepo interface {
	CreateRequirement(ctx context.Context, name string, description *string, event, size int64) (int64, error)
	UpdateRequirement(ctx context.Context, requirementID int64, upd model.UpdateRequirementRequest) error
	DeleteRequirement(ctx context.Context, requirementID int64) error
	TrimFulfillments(ctx context.Context, requirementID, keep int64) error
}

type RequirementService struct {
	repo  RequirementRepo
	authz *Authorizer
}

func NewRequirementService(repo RequirementRepo, authz *Authorizer) *RequirementService {
	return &RequirementService{repo: repo, authz: authz}
}

func (s *RequirementService) Create(ctx context.Context, req model.CreateRequirementRequest, authUserID int64) (*model.Requirement, error) {
	if err := s.authz.AuthorizeEventOwner(ctx, req.Event, authUserID, "cannot create requirement for event that user doesn't own"); err != nil {
		return nil, err
	}

	size := int64(1)
	if req.Size != nil {
		size = *req.Size
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidInput)
	}

	id, err := s.repo.CreateRequirement(ctx, req.Name, req.Description, req.Event, size)
	if err != nil {
		return nil, err
	}

	return &model.Requirement{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Size:        size,
		Event:       req.Event,
	}, nil
}

// Update edits a requirement. When size shrinks below the current
// fulfillment count, the newest surplus fulfillments are dropped.
func (s *RequirementService) Update(ctx context.Context, requirementID, authUserID int64, upd model.UpdateRequirementRequest) error {
	if upd.Name == nil && upd.Description == nil && upd.Size == nil {
		return fmt.Errorf("%w: at least one field must be filled out", ErrInvalidInput)
	}
	if upd.Size != nil && *upd.Size < 1 {
		return fmt.Errorf("%w: size must be positive", ErrInvalidInput)
	}

	if err := s.authz.AuthorizeRequirementOwner(ctx, requirementID, authUserID, "cannot update requirement for event that user doesn't own"); err != nil {
		return err
	}

	if err := s.repo.UpdateRequirement(ctx, requirementID, upd); err != nil {
		if db.IsNoRows(err) {
			return fmt.Errorf("%w: %d", ErrNotFound, requirementID)
		}
		return err
	}

	if upd.Size != nil {
		if err := s.repo.TrimFulfillments(ctx, requirementID, *upd.Size); err != nil {
			return err
		}
	}
	return nil
}

func (s *RequirementService) Delete(ctx context.Context, requirementID, authUserID int64) error {
	if err := s.authz.AuthorizeRequirementOwner(ctx, requirementID, authUserID, "cannot delete requirement for event that user doesn't own"); err != nil {
		return err
	}
	return s.repo.DeleteRequirement(ctx, requirementID)
}
