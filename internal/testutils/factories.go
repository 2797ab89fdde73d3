package testutils

import (
	"fmt"
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique per call so the email index never collides across tests
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye8PezAjMyr7V1u9nFhZvG0Yj1c7O8m2W",
		DisplayName:  "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithDisplayName sets a custom display name for the user
func (f *UserFactory) WithDisplayName(name string) *models.User {
	user := f.Create()
	user.DisplayName = name
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	id := uuid.New()
	// 8 uppercase hex chars of the UUID keep the join code unique enough
	code := fmt.Sprintf("%08X", id.ID())
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code: code[:8],
		Name: "Test Group",
	}
}

// WithCode sets a custom join code for the group
func (f *GroupFactory) WithCode(code string) *models.Group {
	group := f.Create()
	group.Code = code
	return group
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// MembershipFactory provides methods to create test GroupMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership linking the given user to the given group
func (f *MembershipFactory) Create(groupID, userID uuid.UUID, role string) *models.GroupMembership {
	return &models.GroupMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	}
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates an upcoming test Event in the given group
func (f *EventFactory) Create(groupID uuid.UUID, creatorID *uuid.UUID) *models.Event {
	start := time.Now().Add(24 * time.Hour)
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:         groupID,
		Title:           "Test Event",
		Description:     "An event created for testing",
		StartAt:         start,
		EndAt:           start.Add(2 * time.Hour),
		ReminderMinutes: 0,
		CreatedByUserID: creatorID,
	}
}

// Ended creates an Event whose time range is fully in the past
func (f *EventFactory) Ended(groupID uuid.UUID, creatorID *uuid.UUID) *models.Event {
	event := f.Create(groupID, creatorID)
	event.StartAt = time.Now().Add(-48 * time.Hour)
	event.EndAt = time.Now().Add(-46 * time.Hour)
	return event
}

// WithTitle sets a custom title for the event
func (f *EventFactory) WithTitle(groupID uuid.UUID, creatorID *uuid.UUID, title string) *models.Event {
	event := f.Create(groupID, creatorID)
	event.Title = title
	return event
}

// MessageFactory provides methods to create test GroupChatMessage data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Text creates a user-authored text message in the given group
func (f *MessageFactory) Text(groupID, authorID uuid.UUID, text string) *models.GroupChatMessage {
	return &models.GroupChatMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:      groupID,
		Kind:         models.MessageKindText,
		Text:         text,
		AuthorUserID: &authorID,
	}
}

// Announcement creates an event-kind message linked to the given event
func (f *MessageFactory) Announcement(groupID, eventID uuid.UUID, text string) *models.GroupChatMessage {
	return &models.GroupChatMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID: groupID,
		Kind:    models.MessageKindEvent,
		Text:    text,
		EventID: &eventID,
	}
}

// System creates a system-kind message in the given group
func (f *MessageFactory) System(groupID uuid.UUID, text string) *models.GroupChatMessage {
	return &models.GroupChatMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID: groupID,
		Kind:    models.MessageKindSystem,
		Text:    text,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Group      *GroupFactory
	Membership *MembershipFactory
	Event      *EventFactory
	Message    *MessageFactory
	Comment    *CommentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Group:      NewGroupFactory(),
		Membership: NewMembershipFactory(),
		Event:      NewEventFactory(),
		Message:    NewMessageFactory(),
		Comment:    NewCommentFactory(),
	}
}

// CommentFactory provides methods to create test EventComment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a comment by the given user on the given event
func (f *CommentFactory) Create(eventID, authorID uuid.UUID, text string) *models.EventComment {
	return &models.EventComment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:      eventID,
		AuthorUserID: authorID,
		Text:         text,
	}
}
