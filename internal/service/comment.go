package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"
	"github.com/evandev76/event-organizer-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment bounds
const (
	commentTextLimit = 500
	commentReadLimit = 300
)

// CommentService handles business logic for event comments
type CommentService struct {
	groupAccess
	events    repository.EventRepositoryInterface
	comments  repository.CommentRepositoryInterface
	reactions repository.CommentReactionRepositoryInterface
}

// NewCommentService creates a new comment service
func NewCommentService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	events repository.EventRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	reactions repository.CommentReactionRepositoryInterface,
) *CommentService {
	return &CommentService{
		groupAccess: groupAccess{groups: groups, memberships: memberships},
		events:      events,
		comments:    comments,
		reactions:   reactions,
	}
}

// CommentRequest represents the request to add or edit a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse represents one comment with viewer annotations
type CommentResponse struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"event_id"`
	AuthorID    uuid.UUID       `json:"author_id"`
	AuthorName  string          `json:"author_name"`
	Text        string          `json:"text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CanEdit     bool            `json:"can_edit"`
	CanDelete   bool            `json:"can_delete"`
	Reactions   map[string]int  `json:"reactions"`
	MyReactions map[string]bool `json:"my_reactions"`
}

// Add appends a comment to an event's discussion thread
func (s *CommentService) Add(code string, eventID, authorID uuid.UUID, req *CommentRequest) (*CommentResponse, error) {
	text, err := normalizeCommentText(req.Text)
	if err != nil {
		return nil, err
	}
	group, _, err := s.resolveMember(code, authorID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}

	comment := &models.EventComment{
		EventID:      event.ID,
		AuthorUserID: authorID,
		Text:         text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	created, err := s.comments.GetByID(comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	resp := s.annotate(created, authorID, event.CreatedByUserID, nil)
	return &resp, nil
}

// Edit rewrites a comment. Author only.
func (s *CommentService) Edit(code string, eventID, commentID, editorID uuid.UUID, req *CommentRequest) (*CommentResponse, error) {
	text, err := normalizeCommentText(req.Text)
	if err != nil {
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
	comment, err := s.getEventComment(event.ID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorUserID != editorID {
		return nil, apperrors.ErrNotCommentAuthor
	}

	if err := s.comments.UpdateText(comment.ID, text); err != nil {
		return nil, fmt.Errorf("failed to edit comment: %w", err)
	}
	updated, err := s.comments.GetByID(comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	resp := s.annotate(updated, editorID, event.CreatedByUserID, nil)
	return &resp, nil
}

// Delete removes a comment. Author or the event's creator.
func (s *CommentService) Delete(code string, eventID, commentID, editorID uuid.UUID) error {
	group, _, err := s.resolveMember(code, editorID)
	if err != nil {
		return err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return err
	}
	comment, err := s.getEventComment(event.ID, commentID)
	if err != nil {
		return err
	}
	isCreator := event.CreatedByUserID != nil && *event.CreatedByUserID == editorID
	if comment.AuthorUserID != editorID && !isCreator {
		return apperrors.ErrNotCommentAuthor
	}
	if err := s.comments.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// React toggles the caller's emoji reaction on a comment
func (s *CommentService) React(code string, eventID, commentID, userID uuid.UUID, req *ReactRequest) (*ReactionResponse, error) {
	if !models.AllowedReactions[req.Emoji] {
		return nil, apperrors.ErrInvalidEmoji
	}
	group, _, err := s.resolveMember(code, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	comment, err := s.getEventComment(event.ID, commentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reactions.Toggle(comment.ID, userID, req.Emoji); err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}
	summaries, err := s.reactions.Summaries([]uuid.UUID{comment.ID}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reactions: %w", err)
	}
	summary := summaries[comment.ID]
	return &ReactionResponse{
		Reactions:   nonNilCounts(summary.Counts),
		MyReactions: nonNilFlags(summary.Mine),
	}, nil
}

// List returns an event's comments in chronological order, reaction-annotated
func (s *CommentService) List(code string, eventID, viewerID uuid.UUID) ([]CommentResponse, error) {
	group, _, err := s.resolveMember(code, viewerID)
	if err != nil {
		return nil, err
	}
	event, err := s.getGroupEvent(group.ID, eventID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByEvent(event.ID, commentReadLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := make([]uuid.UUID, len(comments))
	for i := range comments {
		ids[i] = comments[i].ID
	}
	summaries, err := s.reactions.Summaries(ids, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reactions: %w", err)
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, s.annotate(&comments[i], viewerID, event.CreatedByUserID, summaries))
	}
	return responses, nil
}

func normalizeCommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.ErrEmptyMessage
	}
	runes := []rune(trimmed)
	if len(runes) > commentTextLimit {
		trimmed = string(runes[:commentTextLimit])
	}
	return trimmed, nil
}

func (s *CommentService) getGroupEvent(groupID, eventID uuid.UUID) (*models.Event, error) {
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

func (s *CommentService) getEventComment(eventID, commentID uuid.UUID) (*models.EventComment, error) {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	if comment.EventID != eventID {
		return nil, apperrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) annotate(
	comment *models.EventComment,
	viewerID uuid.UUID,
	eventCreator *uuid.UUID,
	summaries map[uuid.UUID]repository.ReactionSummary,
) CommentResponse {
	authored := comment.AuthorUserID == viewerID
	isCreator := eventCreator != nil && *eventCreator == viewerID

	resp := CommentResponse{
		ID:          comment.ID,
		EventID:     comment.EventID,
		AuthorID:    comment.AuthorUserID,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
		CanEdit:     authored,
		CanDelete:   authored || isCreator,
		Reactions:   map[string]int{},
		MyReactions: map[string]bool{},
	}
	if comment.Author != nil {
		resp.AuthorName = comment.Author.DisplayName
	}
	if summaries != nil {
		if summary, ok := summaries[comment.ID]; ok {
			resp.Reactions = nonNilCounts(summary.Counts)
			resp.MyReactions = nonNilFlags(summary.Mine)
		}
	}
	return resp
}
