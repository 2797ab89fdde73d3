package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateWithAnnouncement persists an event together with its chat
// announcement and its head position in the group pin list. All three writes
// commit or roll back together.
func (r *EventRepository) CreateWithAnnouncement(event *models.Event, announcement *models.GroupChatMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		announcement.EventID = &event.ID
		if err := tx.Create(announcement).Error; err != nil {
			return err
		}
		return pinEventTx(tx, event.GroupID, event.ID, time.Now())
	})
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByGroup retrieves a group's events sorted by start time ascending
func (r *EventRepository) ListByGroup(groupID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("group_id = ?", groupID).Order("start_at ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Update persists changes to an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event. The cascade constraints take the pin entry, the
// announcement message(s), comments, ratings and the poll down with it, so
// clients never see a dangling reference.
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}

// CreatorsByIDs returns the creator id for each event that has one recorded
func (r *EventRepository) CreatorsByIDs(ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	creators := make(map[uuid.UUID]uuid.UUID)
	if len(ids) == 0 {
		return creators, nil
	}
	var events []models.Event
	err := r.db.Select("id", "created_by_user_id").Where("id IN ?", ids).Find(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.CreatedByUserID != nil {
			creators[e.ID] = *e.CreatedByUserID
		}
	}
	return creators, nil
}
