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

// Chat read-window bounds
const (
	chatHistoryLimit   = 200
	pinnedMessageLimit = 15
	chatTextLimit      = 500
)

// ChatService handles business logic for the group chat thread
type ChatService struct {
	groupAccess
	messages     repository.ChatMessageRepositoryInterface
	reactions    repository.MessageReactionRepositoryInterface
	pinnedEvents repository.PinnedEventRepositoryInterface
	events       repository.EventRepositoryInterface
}

// NewChatService creates a new chat service
func NewChatService(
	groups repository.GroupRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	messages repository.ChatMessageRepositoryInterface,
	reactions repository.MessageReactionRepositoryInterface,
	pinnedEvents repository.PinnedEventRepositoryInterface,
	events repository.EventRepositoryInterface,
) *ChatService {
	return &ChatService{
		groupAccess:  groupAccess{groups: groups, memberships: memberships},
		messages:     messages,
		reactions:    reactions,
		pinnedEvents: pinnedEvents,
		events:       events,
	}
}

// PostMessageRequest represents the request to post or edit a chat message
type PostMessageRequest struct {
	Text string `json:"text"`
}

// ReactRequest represents the request to toggle an emoji reaction
type ReactRequest struct {
	Emoji string `json:"emoji"`
}

// ChatMessageResponse represents one chat message with viewer annotations
type ChatMessageResponse struct {
	ID          uuid.UUID       `json:"id"`
	Kind        string          `json:"kind"`
	Text        string          `json:"text"`
	EventID     *uuid.UUID      `json:"event_id,omitempty"`
	AuthorID    *uuid.UUID      `json:"author_id,omitempty"`
	AuthorName  string          `json:"author_name"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Pinned      bool            `json:"pinned"`
	PinnedAt    *time.Time      `json:"pinned_at,omitempty"`
	CanEdit     bool            `json:"can_edit"`
	CanDelete   bool            `json:"can_delete"`
	CanPin      bool            `json:"can_pin"`
	Reactions   map[string]int  `json:"reactions"`
	MyReactions map[string]bool `json:"my_reactions"`
}

// ChatResponse represents the full chat read: recent history plus the two
// pin boards (pinned text messages and pinned event ids).
type ChatResponse struct {
	Messages       []ChatMessageResponse `json:"messages"`
	Pinned         []ChatMessageResponse `json:"pinned"`
	PinnedEventIDs []uuid.UUID           `json:"pinned_event_ids"`
}

// ReactionResponse carries the recomputed reaction state after a toggle
type ReactionResponse struct {
	Reactions   map[string]int  `json:"reactions"`
	MyReactions map[string]bool `json:"my_reactions"`
}

// Post appends a text message to the group chat
func (s *ChatService) Post(code string, authorID uuid.UUID, req *PostMessageRequest) (*ChatMessageResponse, error) {
	text, err := normalizeChatText(req.Text)
	if err != nil {
		return nil, err
	}
	group, membership, err := s.resolveMember(code, authorID)
	if err != nil {
		return nil, err
	}

	message := &models.GroupChatMessage{
		GroupID:      group.ID,
		Kind:         models.MessageKindText,
		Text:         text,
		AuthorUserID: &authorID,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	created, err := s.messages.GetByID(message.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	resp := s.annotate(created, authorID, membership, nil, nil)
	return &resp, nil
}

// Edit rewrites a text message. Author only; other kinds are immutable.
func (s *ChatService) Edit(code string, messageID, editorID uuid.UUID, req *PostMessageRequest) (*ChatMessageResponse, error) {
	text, err := normalizeChatText(req.Text)
	if err != nil {
		return nil, err
	}
	group, membership, err := s.resolveMember(code, editorID)
	if err != nil {
		return nil, err
	}
	message, err := s.getGroupMessage(group.ID, messageID)
	if err != nil {
		return nil, err
	}
	if message.Kind != models.MessageKindText {
		return nil, apperrors.ErrMessageImmutable
	}
	if !message.AuthoredBy(editorID) {
		return nil, apperrors.ErrNotMessageAuthor
	}

	if err := s.messages.UpdateText(message.ID, text); err != nil {
		return nil, fmt.Errorf("failed to edit message: %w", err)
	}
	updated, err := s.messages.GetByID(message.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	resp := s.annotate(updated, editorID, membership, nil, nil)
	return &resp, nil
}

// Delete removes a message. Authorization depends on the kind: text messages
// by their author or a moderator, event announcements by the linked event's
// creator or a moderator, system messages by moderators only.
func (s *ChatService) Delete(code string, messageID, editorID uuid.UUID) error {
	group, membership, err := s.resolveMember(code, editorID)
	if err != nil {
		return err
	}
	message, err := s.getGroupMessage(group.ID, messageID)
	if err != nil {
		return err
	}

	allowed := false
	switch message.Kind {
	case models.MessageKindText:
		allowed = message.AuthoredBy(editorID) || membership.IsModerator()
	case models.MessageKindEvent:
		allowed = membership.IsModerator()
		if !allowed && message.EventID != nil {
			creator, err := s.announcedEventCreator(*message.EventID)
			if err != nil {
				return err
			}
			// legacy announcements whose event lost its creator stay
			// moderator-only
			allowed = creator != nil && *creator == editorID
		}
	case models.MessageKindSystem:
		allowed = membership.IsModerator()
	default:
		return apperrors.ErrMessageProtected
	}
	if !allowed {
		return apperrors.ErrMessageProtected
	}

	if err := s.messages.Delete(message.ID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// TogglePin pins or unpins a text message. Author or moderator.
func (s *ChatService) TogglePin(code string, messageID, actorID uuid.UUID) (*ChatMessageResponse, error) {
	group, membership, err := s.resolveMember(code, actorID)
	if err != nil {
		return nil, err
	}
	message, err := s.getGroupMessage(group.ID, messageID)
	if err != nil {
		return nil, err
	}
	if message.Kind != models.MessageKindText {
		return nil, apperrors.ErrMessageNotPinnable
	}
	if !message.AuthoredBy(actorID) && !membership.IsModerator() {
		return nil, apperrors.ErrNotMessageAuthor
	}

	if message.PinnedAt != nil {
		err = s.messages.SetPinned(message.ID, nil, nil)
	} else {
		now := time.Now()
		err = s.messages.SetPinned(message.ID, &now, &actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle pin: %w", err)
	}

	updated, err := s.messages.GetByID(message.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	resp := s.annotate(updated, actorID, membership, nil, nil)
	return &resp, nil
}

// React toggles the caller's emoji reaction on a message and returns the
// recomputed aggregate.
func (s *ChatService) React(code string, messageID, userID uuid.UUID, req *ReactRequest) (*ReactionResponse, error) {
	if !models.AllowedReactions[req.Emoji] {
		return nil, apperrors.ErrInvalidEmoji
	}
	group, _, err := s.resolveMember(code, userID)
	if err != nil {
		return nil, err
	}
	message, err := s.getGroupMessage(group.ID, messageID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reactions.Toggle(message.ID, userID, req.Emoji); err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}
	summaries, err := s.reactions.Summaries([]uuid.UUID{message.ID}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reactions: %w", err)
	}
	summary := summaries[message.ID]
	return &ReactionResponse{
		Reactions:   nonNilCounts(summary.Counts),
		MyReactions: nonNilFlags(summary.Mine),
	}, nil
}

// List returns the chat read model: the latest messages in chronological
// order, the pinned text messages and the pinned event id board.
func (s *ChatService) List(code string, viewerID uuid.UUID) (*ChatResponse, error) {
	group, membership, err := s.resolveMember(code, viewerID)
	if err != nil {
		return nil, err
	}
	recent, err := s.messages.ListRecent(group.ID, chatHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	pinned, err := s.messages.ListPinned(group.ID, pinnedMessageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pinned messages: %w", err)
	}
	pinnedEventIDs, err := s.pinnedEvents.ListEventIDs(group.ID, models.MaxPinnedEventsPerGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to list pinned events: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(recent)+len(pinned))
	for i := range recent {
		ids = append(ids, recent[i].ID)
	}
	for i := range pinned {
		ids = append(ids, pinned[i].ID)
	}
	summaries, err := s.reactions.Summaries(ids, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reactions: %w", err)
	}

	var announcedIDs []uuid.UUID
	for i := range recent {
		if recent[i].Kind == models.MessageKindEvent && recent[i].EventID != nil {
			announcedIDs = append(announcedIDs, *recent[i].EventID)
		}
	}
	creators, err := s.events.CreatorsByIDs(announcedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load announcement creators: %w", err)
	}

	resp := &ChatResponse{
		Messages:       make([]ChatMessageResponse, 0, len(recent)),
		Pinned:         make([]ChatMessageResponse, 0, len(pinned)),
		PinnedEventIDs: pinnedEventIDs,
	}
	for i := range recent {
		resp.Messages = append(resp.Messages, s.annotate(&recent[i], viewerID, membership, summaries, creators))
	}
	for i := range pinned {
		resp.Pinned = append(resp.Pinned, s.annotate(&pinned[i], viewerID, membership, summaries, creators))
	}
	return resp, nil
}

// normalizeChatText trims and bounds user-supplied message text
func normalizeChatText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.ErrEmptyMessage
	}
	runes := []rune(trimmed)
	if len(runes) > chatTextLimit {
		trimmed = string(runes[:chatTextLimit])
	}
	return trimmed, nil
}

// getGroupMessage loads a message and checks it belongs to the group
func (s *ChatService) getGroupMessage(groupID, messageID uuid.UUID) (*models.GroupChatMessage, error) {
	message, err := s.messages.GetByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	if message.GroupID != groupID {
		return nil, apperrors.ErrMessageNotFound
	}
	return message, nil
}

// announcedEventCreator returns the creator of an announced event, nil when
// the event is gone or predates creator tracking
func (s *ChatService) announcedEventCreator(eventID uuid.UUID) (*uuid.UUID, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load announced event: %w", err)
	}
	return event.CreatedByUserID, nil
}

func (s *ChatService) annotate(
	message *models.GroupChatMessage,
	viewerID uuid.UUID,
	membership *models.GroupMembership,
	summaries map[uuid.UUID]repository.ReactionSummary,
	creators map[uuid.UUID]uuid.UUID,
) ChatMessageResponse {
	isText := message.Kind == models.MessageKindText
	authored := message.AuthoredBy(viewerID)
	moderator := membership.IsModerator()

	canDelete := false
	switch message.Kind {
	case models.MessageKindText:
		canDelete = authored || moderator
	case models.MessageKindEvent:
		canDelete = moderator
		if !canDelete && message.EventID != nil {
			creator, ok := creators[*message.EventID]
			canDelete = ok && creator == viewerID
		}
	case models.MessageKindSystem:
		canDelete = moderator
	}

	resp := ChatMessageResponse{
		ID:          message.ID,
		Kind:        message.Kind,
		Text:        message.Text,
		EventID:     message.EventID,
		AuthorID:    message.AuthorUserID,
		AuthorName:  message.AuthorName(),
		CreatedAt:   message.CreatedAt,
		UpdatedAt:   message.UpdatedAt,
		Pinned:      message.PinnedAt != nil,
		PinnedAt:    message.PinnedAt,
		CanEdit:     isText && authored,
		CanDelete:   canDelete,
		CanPin:      isText && (authored || moderator),
		Reactions:   map[string]int{},
		MyReactions: map[string]bool{},
	}
	if summaries != nil {
		if summary, ok := summaries[message.ID]; ok {
			resp.Reactions = nonNilCounts(summary.Counts)
			resp.MyReactions = nonNilFlags(summary.Mine)
		}
	}
	return resp
}

func nonNilCounts(counts map[string]int) map[string]int {
	if counts == nil {
		return map[string]int{}
	}
	return counts
}

func nonNilFlags(flags map[string]bool) map[string]bool {
	if flags == nil {
		return map[string]bool{}
	}
	return flags
}
