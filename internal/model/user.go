package model

import "time"

// User is a staff account in the credential store.
// The first account ever registered is elevated to superuser.
type User struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:254" json:"email"`
	Password    string    `gorm:"size:128;not null" json:"-"` // bcrypt hash
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "auth_user"
}
