package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PinnedEventRepository handles the bounded per-group pinned event list
type PinnedEventRepository struct {
	db *gorm.DB
}

// NewPinnedEventRepository creates a new pinned event repository
func NewPinnedEventRepository(db *gorm.DB) *PinnedEventRepository {
	return &PinnedEventRepository{db: db}
}

// pinEventTx inserts (or refreshes) a pin at the head of the group list and
// truncates everything past MaxPinnedEventsPerGroup. Shared with the event
// creation transaction.
func pinEventTx(tx *gorm.DB, groupID, eventID uuid.UUID, now time.Time) error {
	pin := &models.GroupPinnedEvent{
		GroupID:  groupID,
		EventID:  eventID,
		PinnedAt: now,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}, {Name: "event_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"pinned_at": now}),
	}).Create(pin).Error
	if err != nil {
		return err
	}
	return tx.Exec(`
		DELETE FROM group_pinned_events
		WHERE group_id = ? AND id NOT IN (
			SELECT id FROM group_pinned_events
			WHERE group_id = ?
			ORDER BY pinned_at DESC, id DESC
			LIMIT ?
		)`, groupID, groupID, models.MaxPinnedEventsPerGroup).Error
}

// Pin places an event at the head of the group's pinned list
func (r *PinnedEventRepository) Pin(groupID, eventID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return pinEventTx(tx, groupID, eventID, time.Now())
	})
}

// ListEventIDs returns the pinned event ids, most recently pinned first
func (r *PinnedEventRepository) ListEventIDs(groupID uuid.UUID, limit int) ([]uuid.UUID, error) {
	var pins []models.GroupPinnedEvent
	err := r.db.Where("group_id = ?", groupID).
		Order("pinned_at DESC, id DESC").
		Limit(limit).
		Find(&pins).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(pins))
	for _, p := range pins {
		ids = append(ids, p.EventID)
	}
	return ids, nil
}
