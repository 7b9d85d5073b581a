package model

import "time"

// User is an account in the system. Identity endpoints own its lifecycle;
// every other entity references it by UserID only.
type User struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Username           string     `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash       string     `gorm:"size:255" json:"-"`
	DisplayName        string     `gorm:"size:100" json:"display_name,omitempty"`
	MustChangePassword bool       `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	LastUpdatedAt      *time.Time `json:"last_updated_at,omitempty"`
}
