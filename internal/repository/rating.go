package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository handles database operations for event ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Set records the user's rating for an event, replacing any previous value
func (r *RatingRepository) Set(eventID, userID uuid.UUID, value int) error {
	rating := models.EventRating{EventID: eventID, UserID: userID, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
	}).Create(&rating).Error
}

// Clear removes the user's rating for an event, if any
func (r *RatingRepository) Clear(eventID, userID uuid.UUID) error {
	return r.db.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventRating{}).Error
}

// RatingTally holds per-event up and down vote totals
type RatingTally struct {
	Up   int
	Down int
	Mine *int
}

// TallyByEvents returns per-event rating totals plus the viewer's own value
func (r *RatingRepository) TallyByEvents(eventIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]RatingTally, error) {
	tallies := make(map[uuid.UUID]RatingTally, len(eventIDs))
	if len(eventIDs) == 0 {
		return tallies, nil
	}
	var ratings []models.EventRating
	err := r.db.Where("event_id IN ?", eventIDs).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	for _, rating := range ratings {
		tally := tallies[rating.EventID]
		switch rating.Value {
		case models.RatingUp:
			tally.Up++
		case models.RatingDown:
			tally.Down++
		}
		if rating.UserID == viewerID {
			value := rating.Value
			tally.Mine = &value
		}
		tallies[rating.EventID] = tally
	}
	return tallies, nil
}
