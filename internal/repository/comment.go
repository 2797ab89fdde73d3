package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for event comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.EventComment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment with its author
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.EventComment, error) {
	var comment models.EventComment
	err := r.db.Preload("Author").First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByEvent returns an event's comments in chronological order
func (r *CommentRepository) ListByEvent(eventID uuid.UUID, limit int) ([]models.EventComment, error) {
	var comments []models.EventComment
	err := r.db.Preload("Author").
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateText rewrites a comment's text
func (r *CommentRepository) UpdateText(id uuid.UUID, text string) error {
	return r.db.Model(&models.EventComment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"text": text, "updated_at": time.Now()}).Error
}

// Delete removes a comment and its reactions
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EventComment{}, "id = ?", id).Error
}

// HasAuthored reports whether the user has commented on the event
func (r *CommentRepository) HasAuthored(eventID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.EventComment{}).
		Where("event_id = ? AND author_user_id = ?", eventID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AuthoredEventIDs returns the subset of event IDs the user has commented on
func (r *CommentRepository) AuthoredEventIDs(eventIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	authored := make(map[uuid.UUID]bool, len(eventIDs))
	if len(eventIDs) == 0 {
		return authored, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.EventComment{}).
		Distinct("event_id").
		Where("event_id IN ? AND author_user_id = ?", eventIDs, userID).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		authored[id] = true
	}
	return authored, nil
}

// CountByEvents returns per-event comment counts
func (r *CommentRepository) CountByEvents(eventIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		EventID uuid.UUID
		Total   int
	}
	err := r.db.Model(&models.EventComment{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}
