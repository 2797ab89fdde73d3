package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat message kinds
const (
	MessageKindText   = "text"
	MessageKindEvent  = "event"
	MessageKindSystem = "system"
)

// SystemAuthorName is rendered as the author of system and event messages
const SystemAuthorName = "Systeme"

// GroupChatMessage is one entry in a group's chat thread. AuthorUserID is
// nullable: system and event announcements have no user author. EventID is set
// only for kind=event and links back to the announced event.
type GroupChatMessage struct {
	BaseModel
	GroupID        uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index:idx_group_created,priority:1"`
	Kind           string     `json:"kind" gorm:"size:10;not null;default:text" validate:"required,oneof=text event system"`
	Text           string     `json:"text" gorm:"size:500;not null" validate:"required,max=500"`
	EventID        *uuid.UUID `json:"event_id,omitempty" gorm:"type:uuid;index"`
	AuthorUserID   *uuid.UUID `json:"author_user_id,omitempty" gorm:"type:uuid;index"`
	PinnedAt       *time.Time `json:"pinned_at,omitempty" gorm:"index"`
	PinnedByUserID *uuid.UUID `json:"pinned_by_user_id,omitempty" gorm:"type:uuid"`

	Author   *User                  `json:"author,omitempty" gorm:"foreignKey:AuthorUserID"`
	PinnedBy *User                  `json:"pinned_by,omitempty" gorm:"foreignKey:PinnedByUserID"`
	Event    *Event                 `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Reactions []GroupMessageReaction `json:"reactions,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupChatMessage
func (GroupChatMessage) TableName() string {
	return "group_chat_messages"
}

// AuthorName resolves the display label for the message author.
// Non-user rows always render as the system label, never empty.
func (m *GroupChatMessage) AuthorName() string {
	if m.Author != nil && m.Author.DisplayName != "" {
		return m.Author.DisplayName
	}
	return SystemAuthorName
}

// AuthoredBy reports whether the message has a user author matching userID
func (m *GroupChatMessage) AuthoredBy(userID uuid.UUID) bool {
	return m.AuthorUserID != nil && *m.AuthorUserID == userID
}
