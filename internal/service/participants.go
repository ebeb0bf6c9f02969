package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

type ParticipantRepo interface {
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	AddParticipant(ctx context.Context, eventID, userID int64) error
	RemoveParticipant(ctx context.Context, userID, eventID int64) error
}

type ParticipantService struct {
	repo ParticipantRepo
}

func NewParticipantService(repo ParticipantRepo) *ParticipantService {
	return &ParticipantService{repo: repo}
}

// Join registers the authenticated user as a participant of an event.
// Participation can only be declared for oneself.
func (s *ParticipantService) Join(ctx context.Context, req model.JoinEventRequest, authUserID int64) (*model.ParticipantResponse, error) {
	if err := AuthorizeUser(req.User, authUserID, "cannot make participation for another user"); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, req.User)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, req.User)
		}
		return nil, err
	}

	if err := s.repo.AddParticipant(ctx, req.Event, req.User); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: event %d", ErrNotFound, req.Event)
		}
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: already participating", ErrConflict)
		}
		return nil, err
	}

	return &model.ParticipantResponse{User: user.ID, Username: user.Username}, nil
}

func (s *ParticipantService) Leave(ctx context.Context, userID, eventID, authUserID int64) error {
	if err := AuthorizeUser(userID, authUserID, "cannot remove participation for another user"); err != nil {
		return err
	}
	return s.repo.RemoveParticipant(ctx, userID, eventID)
}
