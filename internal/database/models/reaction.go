package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllowedReactions is the fixed emoji allow-list for message and comment
// reactions. Anything else is rejected.
var AllowedReactions = map[string]bool{
	"👍": true,
	"👎": true,
	"😂": true,
	"❤️": true,
	"🔥": true,
	"🎉": true,
	"😮": true,
}

// GroupMessageReaction is one user's emoji marker on a chat message.
// Existence of the row is the whole state; counts are always derived by
// aggregation at read time to avoid drift.
type GroupMessageReaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MessageID uuid.UUID `json:"message_id" gorm:"type:uuid;not null;uniqueIndex:idx_message_user_emoji"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_message_user_emoji"`
	Emoji     string    `json:"emoji" gorm:"size:16;not null;uniqueIndex:idx_message_user_emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GroupMessageReaction
func (GroupMessageReaction) TableName() string {
	return "group_message_reactions"
}

// BeforeCreate sets the UUID if not already set
func (r *GroupMessageReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// EventCommentReaction is one user's emoji marker on an event comment
type EventCommentReaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CommentID uuid.UUID `json:"comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_user_emoji"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_user_emoji"`
	Emoji     string    `json:"emoji" gorm:"size:16;not null;uniqueIndex:idx_comment_user_emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for EventCommentReaction
func (EventCommentReaction) TableName() string {
	return "event_comment_reactions"
}

// BeforeCreate sets the UUID if not already set
func (r *EventCommentReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
