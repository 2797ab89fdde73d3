package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating votes as accepted on the wire
const (
	VoteUp    = "up"
	VoteDown  = "down"
	VoteClear = "clear"
)

// RatingService handles business logic for post-event ratings
type RatingService struct {
	groupAccess
	events   repository.EventRepositoryInterface
	comments repository.CommentRepositoryInterface
	ratings  repository.RatingRepositoryInterface
}

// NewRatingService creates a new rating service
func NewRatingService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	events repository.EventRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	ratings repository.RatingRepositoryInterface,
) *RatingService {
	return &RatingService{
		groupAccess: groupAccess{groups: groups, memberships: memberships},
		events:      events,
		comments:    comments,
		ratings:     ratings,
	}
}

// SetRatingRequest represents the request to cast or clear a rating vote
type SetRatingRequest struct {
	Vote string `json:"vote"`
}

// RatingResponse represents an event's rating state for the viewer
type RatingResponse struct {
	EventID uuid.UUID `json:"event_id"`
	Up      int       `json:"up"`
	Down    int       `json:"down"`
	MyVote  int       `json:"my_vote"`
	Ended   bool      `json:"ended"`
	CanVote bool      `json:"can_vote"`
}

// Get returns the aggregate rating state plus the viewer's own vote
func (s *RatingService) Get(code string, eventID, viewerID uuid.UUID) (*RatingResponse, error) {
	group, _, err := s.resolveMember(code, viewerID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(event, viewerID)
}

// Set casts, overwrites or clears the caller's vote. Only allowed once the
// event has ended and only for participants (creator or commenters).
func (s *RatingService) Set(code string, eventID, voterID uuid.UUID, req *SetRatingRequest) (*RatingResponse, error) {
	var value int
	switch req.Vote {
	case VoteUp:
		value = models.RatingUp
	case VoteDown:
		value = models.RatingDown
	case VoteClear:
		value = 0
	default:
		return nil, apperrors.ErrInvalidRatingVote
	}

	group, _, err := s.resolveMember(code, voterID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Ended(time.Now()) {
		return nil, apperrors.ErrEventNotEnded
	}
	participated, err := s.hasParticipated(event, voterID)
	if err != nil {
		return nil, err
	}
	if !participated {
		return nil, apperrors.ErrNotParticipant
	}

	if value == 0 {
		err = s.ratings.Clear(event.ID, voterID)
	} else {
		err = s.ratings.Set(event.ID, voterID, value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record rating: %w", err)
	}
	return s.buildResponse(event, voterID)
}

// hasParticipated implements the rating gate: creator or has a comment
func (s *RatingService) hasParticipated(event *models.Event, userID uuid.UUID) (bool, error) {
	if event.CreatedByUserID != nil && *event.CreatedByUserID == userID {
		return true, nil
	}
	commented, err := s.comments.HasAuthored(event.ID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check participation: %w", err)
	}
	return commented, nil
}

func (s *RatingService) buildResponse(event *models.Event, viewerID uuid.UUID) (*RatingResponse, error) {
	tallies, err := s.ratings.TallyByEvents([]uuid.UUID{event.ID}, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally ratings: %w", err)
	}
	participated, err := s.hasParticipated(event, viewerID)
	if err != nil {
		return nil, err
	}

	tally := tallies[event.ID]
	resp := &RatingResponse{
		EventID: event.ID,
		Up:      tally.Up,
		Down:    tally.Down,
		Ended:   event.Ended(time.Now()),
	}
	if tally.Mine != nil {
		resp.MyVote = *tally.Mine
	}
	resp.CanVote = resp.Ended && participated
	return resp, nil
}

func (s *RatingService) getGroupEvent(groupID, eventID uuid.UUID) (*models.Event, error) {
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
