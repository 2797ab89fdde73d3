package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled occurrence with a time range, owned by its creator for
// mutation purposes. CreatedByUserID is nullable: events imported from before
// creator tracking existed are editable by any member.
type Event struct {
	BaseModel
	GroupID         uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	Title           string     `json:"title" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	Description     string     `json:"description" gorm:"size:800" validate:"max=800"`
	StartAt         time.Time  `json:"start_at" gorm:"not null;index"`
	EndAt           time.Time  `json:"end_at" gorm:"not null"`
	ReminderMinutes int        `json:"reminder_minutes" gorm:"not null;default:0" validate:"min=0,max=1440"`
	CreatedByUserID *uuid.UUID `json:"created_by_user_id,omitempty" gorm:"type:uuid;index"`

	Creator  *User          `json:"creator,omitempty" gorm:"foreignKey:CreatedByUserID"`
	Comments []EventComment `json:"comments,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Ratings  []EventRating  `json:"ratings,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Poll     *EventPoll     `json:"poll,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Ended reports whether the event is finished at the given instant.
// Derived, never stored.
func (e *Event) Ended(now time.Time) bool {
	return !e.EndAt.After(now)
}

// EditableBy reports whether a user may mutate the event. Events without a
// recorded creator predate creator tracking and stay editable by anyone.
func (e *Event) EditableBy(userID uuid.UUID) bool {
	if e.CreatedByUserID == nil {
		return true
	}
	return *e.CreatedByUserID == userID
}
