package models

// User represents a registered account. Email is stored lowercased so the
// unique index is effectively case-insensitive.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	DisplayName  string `json:"display_name" gorm:"size:24;not null" validate:"required,min=1,max=24"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
