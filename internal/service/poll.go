package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollService handles business logic for per-event polls
type PollService struct {
	groupAccess
	events    repository.EventRepositoryInterface
	polls     repository.PollRepositoryInterface
	validator *validator.Validate
}

// NewPollService creates a new poll service
func NewPollService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	events repository.EventRepositoryInterface,
	polls repository.PollRepositoryInterface,
	validator *validator.Validate,
) *PollService {
	return &PollService{
		groupAccess: groupAccess{groups: groups, memberships: memberships},
		events:      events,
		polls:       polls,
		validator:   validator,
	}
}

// SetPollRequest represents the request to install or replace an event's poll
type SetPollRequest struct {
	Question string   `json:"question" validate:"required,min=1,max=120"`
	Options  []string `json:"options" validate:"required,min=2,max=8,dive,required,min=1,max=60"`
}

// VoteRequest represents the request to cast or clear a poll vote.
// A nil OptionID clears the caller's vote.
type VoteRequest struct {
	OptionID *uuid.UUID `json:"option_id"`
}

// PollOptionResponse represents one option with its derived vote count
type PollOptionResponse struct {
	ID    uuid.UUID `json:"id"`
	Text  string    `json:"text"`
	Votes int       `json:"votes"`
}

// PollResponse represents an event's poll for the viewer
type PollResponse struct {
	ID        uuid.UUID            `json:"id"`
	EventID   uuid.UUID            `json:"event_id"`
	Question  string               `json:"question"`
	Options   []PollOptionResponse `json:"options"`
	MyVote    *uuid.UUID           `json:"my_vote,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// Get returns the event's poll with derived tallies and the viewer's choice.
// Events without a poll yield ErrPollNotFound.
func (s *PollService) Get(code string, eventID, viewerID uuid.UUID) (*PollResponse, error) {
	group, _, err := s.resolveMember(code, viewerID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	poll, err := s.getPoll(event.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(poll, viewerID), nil
}

// Set installs a poll on the event, replacing any existing one wholesale.
// Prior options and votes are discarded. Creator only.
func (s *PollService) Set(code string, eventID, actorID uuid.UUID, req *SetPollRequest) (*PollResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	group, _, err := s.resolveMember(code, actorID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.EditableBy(actorID) {
		return nil, apperrors.ErrNotEventCreator
	}

	poll := &models.EventPoll{
		EventID:         event.ID,
		Question:        req.Question,
		CreatedByUserID: actorID,
	}
	for i, text := range req.Options {
		poll.Options = append(poll.Options, models.EventPollOption{Text: text, Position: i})
	}
	if err := s.polls.Replace(poll); err != nil {
		return nil, fmt.Errorf("failed to set poll: %w", err)
	}
	return s.toResponse(poll, actorID), nil
}

// Clear removes the event's poll entirely. Creator only.
func (s *PollService) Clear(code string, eventID, actorID uuid.UUID) error {
	group, _, err := s.resolveMember(code, actorID)
	if err != nil {
		return err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return err
	}
	if !event.EditableBy(actorID) {
		return apperrors.ErrNotEventCreator
	}
	if err := s.polls.DeleteByEventID(event.ID); err != nil {
		return fmt.Errorf("failed to clear poll: %w", err)
	}
	return nil
}

// Vote casts, overwrites or clears the caller's single choice
func (s *PollService) Vote(code string, eventID, voterID uuid.UUID, req *VoteRequest) (*PollResponse, error) {
	group, _, err := s.resolveMember(code, voterID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	poll, err := s.getPoll(event.ID)
	if err != nil {
		return nil, err
	}

	if req.OptionID == nil {
		if err := s.polls.ClearVote(poll.ID, voterID); err != nil {
			return nil, fmt.Errorf("failed to clear vote: %w", err)
		}
	} else {
		valid := false
		for _, option := range poll.Options {
			if option.ID == *req.OptionID {
				valid = true
				break
			}
		}
		if !valid {
			return nil, apperrors.ErrInvalidPollOption
		}
		if err := s.polls.SetVote(poll.ID, *req.OptionID, voterID); err != nil {
			return nil, fmt.Errorf("failed to record vote: %w", err)
		}
	}

	updated, err := s.getPoll(event.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated, voterID), nil
}

func (s *PollService) getPoll(eventID uuid.UUID) (*models.EventPoll, error) {
	poll, err := s.polls.GetByEventID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to load poll: %w", err)
	}
	return poll, nil
}

func (s *PollService) getGroupEvent(groupID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event.GroupID != groupID {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

// toResponse tallies votes from the vote rows, never from a stored counter
func (s *PollService) toResponse(poll *models.EventPoll, viewerID uuid.UUID) *PollResponse {
	counts := make(map[uuid.UUID]int, len(poll.Options))
	var myVote *uuid.UUID
	for i := range poll.Votes {
		vote := &poll.Votes[i]
		counts[vote.OptionID]++
		if vote.UserID == viewerID {
			optionID := vote.OptionID
			myVote = &optionID
		}
	}

	resp := &PollResponse{
		ID:        poll.ID,
		EventID:   poll.EventID,
		Question:  poll.Question,
		Options:   make([]PollOptionResponse, 0, len(poll.Options)),
		MyVote:    myVote,
		CreatedAt: poll.CreatedAt,
	}
	for _, option := range poll.Options {
		resp.Options = append(resp.Options, PollOptionResponse{
			ID:    option.ID,
			Text:  option.Text,
			Votes: counts[option.ID],
		})
	}
	return resp
}
