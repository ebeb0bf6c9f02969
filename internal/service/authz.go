package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
)

type OwnerStore interface {
	GetEventCreator(ctx context.Context, eventID int64) (int64, error)
	GetRequirementEventCreator(ctx context.Context, requirementID int64) (int64, error)
}

// Authorizer gates mutations behind ownership comparisons. A missing
// owning resource is always NotFound, never a silent allow or deny.
type Authorizer struct {
	repo OwnerStore
}

func NewAuthorizer(repo OwnerStore) *Authorizer {
	return &Authorizer{repo: repo}
}

// AuthorizeUser allows only the authenticated user to act on their own
// account-scoped resources.
func AuthorizeUser(targetUserID, authUserID int64, msg string) error {
	if targetUserID != authUserID {
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	}
	return nil
}

// AuthorizeEventOwner allows only the creator of the event to proceed.
func (a *Authorizer) AuthorizeEventOwner(ctx context.Context, eventID, authUserID int64, msg string) error {
	creator, err := a.repo.GetEventCreator(ctx, eventID)
	if err != nil {
		if db.IsNoRows(err) {
			return fmt.Errorf("%w: event %d", ErrNotFound, eventID)
		}
		return err
	}
	if creator != authUserID {
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	}
	return nil
}

// AuthorizeRequirementOwner allows only the creator of the event the
// requirement belongs to.
func (a *Authorizer) AuthorizeRequirementOwner(ctx context.Context, requirementID, authUserID int64, msg string) error {
	creator, err := a.repo.GetRequirementEventCreator(ctx, requirementID)
	if err != nil {
		if db.IsNoRows(err) {
			return fmt.Errorf("%w: requirement %d", ErrNotFound, requirementID)
		}
		return err
	}
	if creator != authUserID {
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	}
	return nil
}
