package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating values
const (
	RatingUp   = 1
	RatingDown = -1
)

// EventRating is one participant's post-event vote, one live row per
// (event, user). Absence of a row means no vote.
type EventRating struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_rater"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_rater"`
	Value     int       `json:"value" gorm:"not null" validate:"oneof=-1 1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for EventRating
func (EventRating) TableName() string {
	return "event_ratings"
}

// BeforeCreate sets the UUID if not already set
func (r *EventRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
