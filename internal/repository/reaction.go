package repository

import (
	"errors"

	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionSummary aggregates reactions for one target: counts per emoji
// plus the set of emojis the viewer has placed themselves.
type ReactionSummary struct {
	Counts map[string]int
	Mine   map[string]bool
}

// MessageReactionRepository handles database operations for chat message reactions
type MessageReactionRepository struct {
	db *gorm.DB
}

// NewMessageReactionRepository creates a new message reaction repository
func NewMessageReactionRepository(db *gorm.DB) *MessageReactionRepository {
	return &MessageReactionRepository{db: db}
}

// Toggle adds the user's reaction if absent and removes it if present.
// Returns true when the reaction is present after the call.
func (r *MessageReactionRepository) Toggle(messageID, userID uuid.UUID, emoji string) (bool, error) {
	present := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
			Delete(&models.GroupMessageReaction{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		reaction := models.GroupMessageReaction{MessageID: messageID, UserID: userID, Emoji: emoji}
		if err := tx.Create(&reaction).Error; err != nil {
			// A concurrent toggle won the insert; the reaction exists either way.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				present = true
				return nil
			}
			return err
		}
		present = true
		return nil
	})
	return present, err
}

// Summaries returns per-message reaction aggregates for the viewer
func (r *MessageReactionRepository) Summaries(messageIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]ReactionSummary, error) {
	summaries := make(map[uuid.UUID]ReactionSummary, len(messageIDs))
	if len(messageIDs) == 0 {
		return summaries, nil
	}
	var reactions []models.GroupMessageReaction
	err := r.db.Where("message_id IN ?", messageIDs).Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	for _, reaction := range reactions {
		summary, ok := summaries[reaction.MessageID]
		if !ok {
			summary = ReactionSummary{Counts: map[string]int{}, Mine: map[string]bool{}}
		}
		summary.Counts[reaction.Emoji]++
		if reaction.UserID == viewerID {
			summary.Mine[reaction.Emoji] = true
		}
		summaries[reaction.MessageID] = summary
	}
	return summaries, nil
}

// CommentReactionRepository handles database operations for event comment reactions
type CommentReactionRepository struct {
	db *gorm.DB
}

// NewCommentReactionRepository creates a new comment reaction repository
func NewCommentReactionRepository(db *gorm.DB) *CommentReactionRepository {
	return &CommentReactionRepository{db: db}
}

// Toggle adds the user's reaction if absent and removes it if present.
// Returns true when the reaction is present after the call.
func (r *CommentReactionRepository) Toggle(commentID, userID uuid.UUID, emoji string) (bool, error) {
	present := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("comment_id = ? AND user_id = ? AND emoji = ?", commentID, userID, emoji).
			Delete(&models.EventCommentReaction{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		reaction := models.EventCommentReaction{CommentID: commentID, UserID: userID, Emoji: emoji}
		if err := tx.Create(&reaction).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				present = true
				return nil
			}
			return err
		}
		present = true
		return nil
	})
	return present, err
}

// Summaries returns per-comment reaction aggregates for the viewer
func (r *CommentReactionRepository) Summaries(commentIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]ReactionSummary, error) {
	summaries := make(map[uuid.UUID]ReactionSummary, len(commentIDs))
	if len(commentIDs) == 0 {
		return summaries, nil
	}
	var reactions []models.EventCommentReaction
	err := r.db.Where("comment_id IN ?", commentIDs).Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	for _, reaction := range reactions {
		summary, ok := summaries[reaction.CommentID]
		if !ok {
			summary = ReactionSummary{Counts: map[string]int{}, Mine: map[string]bool{}}
		}
		summary.Counts[reaction.Emoji]++
		if reaction.UserID == viewerID {
			summary.Mine[reaction.Emoji] = true
		}
		summaries[reaction.CommentID] = summary
	}
	return summaries, nil
}
