package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupInvite is a shareable token that lets its holder join a group as a
// member. Created by owners/admins, optionally bounded by MaxUses.
type GroupInvite struct {
	BaseModel
	Token           string     `json:"token" gorm:"size:48;not null;uniqueIndex"`
	GroupID         uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	CreatedByUserID uuid.UUID  `json:"created_by_user_id" gorm:"type:uuid;not null"`
	ExpiresAt       time.Time  `json:"expires_at" gorm:"not null"`
	MaxUses         *int       `json:"max_uses,omitempty"`
	UsedCount       int        `json:"used_count" gorm:"not null;default:0"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

// TableName returns the table name for GroupInvite
func (GroupInvite) TableName() string {
	return "group_invites"
}

// Expired reports whether the invite is past its expiry at the given instant
func (i *GroupInvite) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

// Exhausted reports whether the invite has no uses left
func (i *GroupInvite) Exhausted() bool {
	return i.MaxUses != nil && i.UsedCount >= *i.MaxUses
}
