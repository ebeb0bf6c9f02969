package service

import (
	"context"
	"fmt"

	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, name string, description *string, creator int64) (int64, error)
	GetEvent(ctx context.Context, eventID int64) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, upd model.UpdateEventRequest) error
	DeleteEvent(ctx context.Context, eventID int64) error
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	ListEventParticipants(ctx context.Context, eventID int64) ([]model.User, error)
	ListEventRequirements(ctx context.Context, eventID int64) ([]model.Requirement, error)
	ListEventFulfillments(ctx context.Context, eventID int64) ([]model.EventFulfiller, error)
}

type EventService struct {
	repo  EventRepo
	authz *Authorizer
}

func NewEventService(repo EventRepo, authz *Authorizer) *EventService {
	return &EventService{repo: repo, authz: authz}
}

func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest, authUserID int64) (*model.Event, error) {
	if err := AuthorizeUser(req.Creator, authUserID, "cannot create event for another user"); err != nil {
		return nil, err
	}

	creator, err := s.repo.GetUserByID(ctx, req.Creator)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, req.Creator)
		}
		return nil, err
	}

	id, err := s.repo.CreateEvent(ctx, req.Name, req.Description, req.Creator)
	if err != nil {
		return nil, err
	}

	return &model.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Creator:     *creator,
	}, nil
}

// Get assembles the full event view: creator, participants,
// requirements and who fulfills what.
func (s *EventService) Get(ctx context.Context, eventID int64) (*model.EventDetail, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, eventID)
		}
		return nil, err
	}

	participants, err := s.repo.ListEventParticipants(ctx, eventID)
	if err != nil {
		return nil, err
	}

	requirements, err := s.repo.ListEventRequirements(ctx, eventID)
	if err != nil {
		return nil, err
	}

	fulfillments, err := s.repo.ListEventFulfillments(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &model.EventDetail{
		ID:           event.ID,
		Name:         event.Name,
		Description:  event.Description,
		Creator:      event.Creator,
		Participants: participants,
		Requirements: requirements,
		Fulfillments: fulfillments,
	}, nil
}

func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *EventService) Update(ctx context.Context, eventID, authUserID int64, upd model.UpdateEventRequest) error {
	if upd.Name == nil && upd.Description == nil {
		return fmt.Errorf("%w: at least one field must be filled out", ErrInvalidInput)
	}

	if err := s.authz.AuthorizeEventOwner(ctx, eventID, authUserID, "cannot update event that user doesn't own"); err != nil {
		return err
	}

	if err := s.repo.UpdateEvent(ctx, eventID, upd); err != nil {
		if db.IsNoRows(err) {
			return fmt.Errorf("%w: %d", ErrNotFound, eventID)
		}
		return err
	}
	return nil
}

func (s *EventService) Delete(ctx context.Context, eventID, authUserID int64) error {
	if err := s.authz.AuthorizeEventOwner(ctx, eventID, authUserID, "cannot delete event that user doesn't own"); err != nil {
		return err
	}
	return s.repo.DeleteEvent(ctx, eventID)
}
