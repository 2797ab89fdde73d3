package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxPinnedEventsPerGroup bounds the per-group pinned event list
const MaxPinnedEventsPerGroup = 25

// GroupPinnedEvent highlights an event at the top of a group. Newest pins sit
// at the head; the list is truncated at MaxPinnedEventsPerGroup. This relation
// is deliberately separate from message-level pinning on text messages.
type GroupPinnedEvent struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_pinned_event"`
	EventID  uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_pinned_event"`
	PinnedAt time.Time `json:"pinned_at" gorm:"not null;index"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupPinnedEvent
func (GroupPinnedEvent) TableName() string {
	return "group_pinned_events"
}

// BeforeCreate sets the UUID if not already set
func (p *GroupPinnedEvent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
