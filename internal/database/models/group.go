package models

// Group is a named collection of users sharing events and a chat thread,
// addressed by a short unique join code.
type Group struct {
	BaseModel
	Code string `json:"code" gorm:"size:8;not null;uniqueIndex" validate:"required,len=8"`
	Name string `json:"name" gorm:"size:40;not null" validate:"required,min=1,max=40"`

	// Relationships. Deleting a group cascades to everything it scopes.
	Memberships  []GroupMembership  `json:"memberships,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Events       []Event            `json:"events,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Messages     []GroupChatMessage `json:"messages,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	PinnedEvents []GroupPinnedEvent `json:"pinned_events,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Invites      []GroupInvite      `json:"invites,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
