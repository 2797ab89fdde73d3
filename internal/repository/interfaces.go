package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group, founderUserID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByCode(code string) (*models.Group, error)
	ExistsByCode(code string) (bool, error)
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Get(groupID, userID uuid.UUID) (*models.GroupMembership, error)
	Upsert(groupID, userID uuid.UUID, role string) error
	Delete(groupID, userID uuid.UUID) (bool, error)
	ListByGroup(groupID uuid.UUID) ([]models.GroupMembership, error)
	ListByUser(userID uuid.UUID) ([]models.GroupMembership, error)
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	CreateWithAnnouncement(event *models.Event, announcement *models.GroupChatMessage) error
	GetByID(id uuid.UUID) (*models.Event, error)
	ListByGroup(groupID uuid.UUID) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
	CreatorsByIDs(ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
}

// PinnedEventRepositoryInterface defines the interface for the group pin board
type PinnedEventRepositoryInterface interface {
	Pin(groupID, eventID uuid.UUID) error
	ListEventIDs(groupID uuid.UUID, limit int) ([]uuid.UUID, error)
}

// ChatMessageRepositoryInterface defines the interface for chat message repository operations
type ChatMessageRepositoryInterface interface {
	Create(message *models.GroupChatMessage) error
	GetByID(id uuid.UUID) (*models.GroupChatMessage, error)
	ListRecent(groupID uuid.UUID, limit int) ([]models.GroupChatMessage, error)
	ListPinned(groupID uuid.UUID, limit int) ([]models.GroupChatMessage, error)
	UpdateText(id uuid.UUID, text string) error
	SetPinned(id uuid.UUID, pinnedAt *time.Time, pinnedBy *uuid.UUID) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.EventComment) error
	GetByID(id uuid.UUID) (*models.EventComment, error)
	ListByEvent(eventID uuid.UUID, limit int) ([]models.EventComment, error)
	UpdateText(id uuid.UUID, text string) error
	Delete(id uuid.UUID) error
	HasAuthored(eventID, userID uuid.UUID) (bool, error)
	AuthoredEventIDs(eventIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error)
	CountByEvents(eventIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// MessageReactionRepositoryInterface defines the interface for chat message reactions
type MessageReactionRepositoryInterface interface {
	Toggle(messageID, userID uuid.UUID, emoji string) (bool, error)
	Summaries(messageIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]ReactionSummary, error)
}

// CommentReactionRepositoryInterface defines the interface for comment reactions
type CommentReactionRepositoryInterface interface {
	Toggle(commentID, userID uuid.UUID, emoji string) (bool, error)
	Summaries(commentIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]ReactionSummary, error)
}

// RatingRepositoryInterface defines the interface for event rating repository operations
type RatingRepositoryInterface interface {
	Set(eventID, userID uuid.UUID, value int) error
	Clear(eventID, userID uuid.UUID) error
	TallyByEvents(eventIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]RatingTally, error)
}

// PollRepositoryInterface defines the interface for event poll repository operations
type PollRepositoryInterface interface {
	GetByEventID(eventID uuid.UUID) (*models.EventPoll, error)
	Replace(poll *models.EventPoll) error
	DeleteByEventID(eventID uuid.UUID) error
	SetVote(pollID, optionID, userID uuid.UUID) error
	ClearVote(pollID, userID uuid.UUID) error
}

// InviteRepositoryInterface defines the interface for group invite repository operations
type InviteRepositoryInterface interface {
	Create(invite *models.GroupInvite) error
	GetByToken(token string) (*models.GroupInvite, error)
	ListByGroup(groupID uuid.UUID) ([]models.GroupInvite, error)
	IncrementUses(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
