package repository

import (
	"time"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessageRepository handles database operations for group chat messages
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create creates a new chat message
func (r *ChatMessageRepository) Create(message *models.GroupChatMessage) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message with its author
func (r *ChatMessageRepository) GetByID(id uuid.UUID) (*models.GroupChatMessage, error) {
	var message models.GroupChatMessage
	err := r.db.Preload("Author").First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListRecent returns the latest messages of a group in chronological order
func (r *ChatMessageRepository) ListRecent(groupID uuid.UUID, limit int) ([]models.GroupChatMessage, error) {
	var messages []models.GroupChatMessage
	err := r.db.Preload("Author").
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// Fetched newest-first to apply the limit; flip to oldest-first for reading.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ListPinned returns a group's pinned messages, most recently pinned first
func (r *ChatMessageRepository) ListPinned(groupID uuid.UUID, limit int) ([]models.GroupChatMessage, error) {
	var messages []models.GroupChatMessage
	err := r.db.Preload("Author").Preload("PinnedBy").
		Where("group_id = ? AND pinned_at IS NOT NULL", groupID).
		Order("pinned_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateText rewrites a message's text and bumps its update timestamp
func (r *ChatMessageRepository) UpdateText(id uuid.UUID, text string) error {
	return r.db.Model(&models.GroupChatMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"text": text, "updated_at": time.Now()}).Error
}

// SetPinned sets or clears the message-level pin markers
func (r *ChatMessageRepository) SetPinned(id uuid.UUID, pinnedAt *time.Time, pinnedBy *uuid.UUID) error {
	return r.db.Model(&models.GroupChatMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"pinned_at": pinnedAt, "pinned_by_user_id": pinnedBy}).Error
}

// Delete removes a message; its reactions go with it via the cascade
func (r *ChatMessageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GroupChatMessage{}, "id = ?", id).Error
}
