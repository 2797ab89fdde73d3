package repository

import (
	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for group memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Get retrieves the membership for a (group, user) pair
func (r *MembershipRepository) Get(groupID, userID uuid.UUID) (*models.GroupMembership, error) {
	var membership models.GroupMembership
	err := r.db.First(&membership, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// Upsert inserts a membership if none exists. Joining an already-joined group
// is a no-op, never an error.
func (r *MembershipRepository) Upsert(groupID, userID uuid.UUID, role string) error {
	membership := &models.GroupMembership{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(membership).Error
}

// Delete removes the membership row for a (group, user) pair and reports
// whether a row was actually removed
func (r *MembershipRepository) Delete(groupID, userID uuid.UUID) (bool, error) {
	res := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.GroupMembership{})
	return res.RowsAffected > 0, res.Error
}

// ListByGroup retrieves a group's memberships with users, in join order
func (r *MembershipRepository) ListByGroup(groupID uuid.UUID) ([]models.GroupMembership, error) {
	var memberships []models.GroupMembership
	err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListByUser retrieves a user's memberships with groups, newest group first
func (r *MembershipRepository) ListByUser(userID uuid.UUID) ([]models.GroupMembership, error) {
	var memberships []models.GroupMembership
	err := r.db.Preload("Group").
		Joins("JOIN groups ON groups.id = group_memberships.group_id").
		Where("group_memberships.user_id = ?", userID).
		Order("groups.created_at DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
