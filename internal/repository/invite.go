package repository

import (
	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for group invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(invite *models.GroupInvite) error {
	return r.db.Create(invite).Error
}

// GetByToken retrieves an invite by its token, with its group
func (r *InviteRepository) GetByToken(token string) (*models.GroupInvite, error) {
	var invite models.GroupInvite
	err := r.db.Preload("Group").First(&invite, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByGroup returns a group's invites, newest first
func (r *InviteRepository) ListByGroup(groupID uuid.UUID) ([]models.GroupInvite, error) {
	var invites []models.GroupInvite
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// IncrementUses bumps an invite's redemption counter
func (r *InviteRepository) IncrementUses(id uuid.UUID) error {
	return r.db.Model(&models.GroupInvite{}).Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}

// Delete removes an invite
func (r *InviteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GroupInvite{}, "id = ?", id).Error
}
