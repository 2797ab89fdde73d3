package models

import (
	"github.com/google/uuid"
)

// EventComment is one entry in an event's discussion thread. Authoring a
// comment also counts as participation for the post-event rating gate.
type EventComment struct {
	BaseModel
	EventID      uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	AuthorUserID uuid.UUID `json:"author_user_id" gorm:"type:uuid;not null;index"`
	Text         string    `json:"text" gorm:"size:500;not null" validate:"required,max=500"`

	Author    *User                  `json:"author,omitempty" gorm:"foreignKey:AuthorUserID"`
	Reactions []EventCommentReaction `json:"reactions,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventComment
func (EventComment) TableName() string {
	return "event_comments"
}
