package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventPoll is the single active poll attached to an event. Replacing a poll
// discards its options and votes wholesale; no history is kept.
type EventPoll struct {
	BaseModel
	EventID         uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex"`
	Question        string    `json:"question" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	CreatedByUserID uuid.UUID `json:"created_by_user_id" gorm:"type:uuid;not null"`

	Options []EventPollOption `json:"options,omitempty" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
	Votes   []EventPollVote   `json:"votes,omitempty" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventPoll
func (EventPoll) TableName() string {
	return "event_polls"
}

// EventPollOption is one choice in a poll, ordered by Position
type EventPollOption struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PollID   uuid.UUID `json:"poll_id" gorm:"type:uuid;not null;index"`
	Text     string    `json:"text" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	Position int       `json:"position" gorm:"not null"`
}

// TableName returns the table name for EventPollOption
func (EventPollOption) TableName() string {
	return "event_poll_options"
}

// BeforeCreate sets the UUID if not already set
func (o *EventPollOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// EventPollVote is one user's single choice, one live row per (poll, user)
type EventPollVote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:uuid;not null;uniqueIndex:idx_poll_voter"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_poll_voter"`
	OptionID  uuid.UUID `json:"option_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for EventPollVote
func (EventPollVote) TableName() string {
	return "event_poll_votes"
}

// BeforeCreate sets the UUID if not already set
func (v *EventPollVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
