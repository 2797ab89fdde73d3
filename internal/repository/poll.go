package repository

import (
	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PollRepository handles database operations for event polls
type PollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository
func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{db: db}
}

// GetByEventID retrieves an event's poll with its options and votes
func (r *PollRepository) GetByEventID(eventID uuid.UUID) (*models.EventPoll, error) {
	var poll models.EventPoll
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Votes").First(&poll, "event_id = ?", eventID).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// Replace installs a new poll for an event, discarding any existing poll
// together with its options and votes in the same transaction.
func (r *PollRepository) Replace(poll *models.EventPoll) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_id = ?", poll.EventID).Delete(&models.EventPoll{}).Error
		if err != nil {
			return err
		}
		return tx.Create(poll).Error
	})
}

// DeleteByEventID removes an event's poll, if any
func (r *PollRepository) DeleteByEventID(eventID uuid.UUID) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.EventPoll{}).Error
}

// SetVote records the user's vote, replacing any previous choice
func (r *PollRepository) SetVote(pollID, optionID, userID uuid.UUID) error {
	vote := models.EventPollVote{PollID: pollID, OptionID: optionID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "poll_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"option_id", "updated_at"}),
	}).Create(&vote).Error
}

// ClearVote removes the user's vote from a poll, if any
func (r *PollRepository) ClearVote(pollID, userID uuid.UUID) error {
	return r.db.Where("poll_id = ? AND user_id = ?", pollID, userID).
		Delete(&models.EventPollVote{}).Error
}
