package repository

import (
	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a group and its founder's owner membership in one transaction
func (r *GroupRepository) Create(group *models.Group, founderUserID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := &models.GroupMembership{
			GroupID: group.ID,
			UserID:  founderUserID,
			Role:    models.RoleOwner,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByCode retrieves a group by its join code. The caller is expected to
// normalize the code first.
func (r *GroupRepository) GetByCode(code string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ExistsByCode reports whether a group with the given code exists
func (r *GroupRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Group{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Delete deletes a group. The schema's cascade constraints remove all
// group-scoped rows (memberships, events, chat, pins, comments, reactions).
func (r *GroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Group{}, "id = ?", id).Error
}
