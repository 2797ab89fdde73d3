package models

import (
	"github.com/google/uuid"
)

// Membership roles
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// GroupMembership links a user to a group with a role, unique per (group, user)
type GroupMembership struct {
	BaseModel
	GroupID uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_user"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_user;index"`
	Role    string    `json:"role" gorm:"size:10;not null;default:member" validate:"required,oneof=owner admin member"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}

// IsModerator reports whether the role carries moderation rights
func (m *GroupMembership) IsModerator() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
