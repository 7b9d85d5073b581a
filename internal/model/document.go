package model

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a user-owned uploaded file (CV, offer letter) stored in
// object storage. The row only carries the object key plus metadata; the
// bytes live in the bucket.
type Document struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	JobApplyID *uint          `gorm:"index" json:"job_apply_id,omitempty"`
	FileName   string         `gorm:"size:255;not null" json:"file_name"`
	ObjectKey  string         `gorm:"size:512;uniqueIndex;not null" json:"object_key"`
	Size       int64          `json:"size"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
