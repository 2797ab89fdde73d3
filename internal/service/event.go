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

// eventAnnouncementPrefix is the fixed text prepended to the chat message
// announcing a new event.
const eventAnnouncementPrefix = "Nouvel evenement: "

// EventService handles business logic for group events
type EventService struct {
	groupAccess
	events    repository.EventRepositoryInterface
	comments  repository.CommentRepositoryInterface
	ratings   repository.RatingRepositoryInterface
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	events repository.EventRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	ratings repository.RatingRepositoryInterface,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		groupAccess: groupAccess{groups: groups, memberships: memberships},
		events:      events,
		comments:    comments,
		ratings:     ratings,
		validator:   validator,
	}
}

// EventRequest represents the request to create or update an event
type EventRequest struct {
	Title           string    `json:"title" validate:"required,min=1,max=60"`
	Description     string    `json:"description" validate:"max=800"`
	StartAt         time.Time `json:"start_at" validate:"required"`
	EndAt           time.Time `json:"end_at" validate:"required"`
	ReminderMinutes int       `json:"reminder_minutes" validate:"min=0,max=1440"`
}

// EventRatingSummary carries the rating aggregates shown on an event.
// MyVote is the viewer's own vote; other voters are never identified.
type EventRatingSummary struct {
	Up      int  `json:"up"`
	Down    int  `json:"down"`
	MyVote  int  `json:"my_vote"`
	CanVote bool `json:"can_vote"`
}

// EventResponse represents an event with viewer-relative annotations
type EventResponse struct {
	ID              uuid.UUID          `json:"id"`
	GroupID         uuid.UUID          `json:"group_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	StartAt         time.Time          `json:"start_at"`
	EndAt           time.Time          `json:"end_at"`
	ReminderMinutes int                `json:"reminder_minutes"`
	CreatedByUserID *uuid.UUID         `json:"created_by_user_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	CanEdit         bool               `json:"can_edit"`
	Ended           bool               `json:"ended"`
	CommentCount    int                `json:"comment_count"`
	Rating          EventRatingSummary `json:"rating"`
}

func (s *EventService) validateDates(req *EventRequest) error {
	if !req.EndAt.After(req.StartAt) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// Create persists an event and, in the same transaction, announces it in the
// group chat and pins it on the group board.
func (s *EventService) Create(code string, authorID uuid.UUID, req *EventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateDates(req); err != nil {
		return nil, err
	}
	group, _, err := s.resolveMember(code, authorID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		GroupID:         group.ID,
		Title:           req.Title,
		Description:     req.Description,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		ReminderMinutes: req.ReminderMinutes,
		CreatedByUserID: &authorID,
	}
	announcement := &models.GroupChatMessage{
		GroupID: group.ID,
		Kind:    models.MessageKindEvent,
		Text:    eventAnnouncementPrefix + req.Title,
	}
	if err := s.events.CreateWithAnnouncement(event, announcement); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := s.toResponse(event, authorID, time.Now())
	resp.Rating.CanVote = false
	return resp, nil
}

// Update rewrites an event's details. Creator only, except legacy events
// without a recorded creator.
func (s *EventService) Update(code string, eventID, editorID uuid.UUID, req *EventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateDates(req); err != nil {
		return nil, err
	}
	group, _, err := s.resolveMember(code, editorID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.EditableBy(editorID) {
		return nil, apperrors.ErrNotEventCreator
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartAt = req.StartAt
	event.EndAt = req.EndAt
	event.ReminderMinutes = req.ReminderMinutes
	if err := s.events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return s.toResponse(event, editorID, time.Now()), nil
}

// Delete removes an event together with its announcement message, pin entry,
// comments, ratings and poll. Same authorization as Update.
func (s *EventService) Delete(code string, eventID, editorID uuid.UUID) error {
	group, _, err := s.resolveMember(code, editorID)
	if err != nil {
		return err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return err
	}
	if !event.EditableBy(editorID) {
		return apperrors.ErrNotEventCreator
	}
	if err := s.events.Delete(event.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// List returns a group's events sorted by start time, each annotated with
// the viewer's edit rights, ended state, comment count and rating summary.
func (s *EventService) List(code string, viewerID uuid.UUID) ([]EventResponse, error) {
	group, _, err := s.resolveMember(code, viewerID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListByGroup(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	ids := make([]uuid.UUID, len(events))
	for i := range events {
		ids[i] = events[i].ID
	}
	tallies, err := s.ratings.TallyByEvents(ids, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally ratings: %w", err)
	}
	commented, err := s.comments.AuthoredEventIDs(ids, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	counts, err := s.comments.CountByEvents(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	now := time.Now()
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		event := &events[i]
		resp := s.toResponse(event, viewerID, now)
		resp.CommentCount = counts[event.ID]

		tally := tallies[event.ID]
		resp.Rating.Up = tally.Up
		resp.Rating.Down = tally.Down
		if tally.Mine != nil {
			resp.Rating.MyVote = *tally.Mine
		}
		participated := commented[event.ID] ||
			(event.CreatedByUserID != nil && *event.CreatedByUserID == viewerID)
		resp.Rating.CanVote = resp.Ended && participated

		responses = append(responses, *resp)
	}
	return responses, nil
}

// getGroupEvent loads an event and checks it belongs to the group
func (s *EventService) getGroupEvent(groupID, eventID uuid.UUID) (*models.Event, error) {
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

func (s *EventService) toResponse(event *models.Event, viewerID uuid.UUID, now time.Time) *EventResponse {
	return &EventResponse{
		ID:              event.ID,
		GroupID:         event.GroupID,
		Title:           event.Title,
		Description:     event.Description,
		StartAt:         event.StartAt,
		EndAt:           event.EndAt,
		ReminderMinutes: event.ReminderMinutes,
		CreatedByUserID: event.CreatedByUserID,
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.UpdatedAt,
		CanEdit:         event.EditableBy(viewerID),
		Ended:           event.Ended(now),
	}
}
