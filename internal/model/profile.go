package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxPassportLen caps the free text passport field on a profile.
const MaxPassportLen = 50

// MyProfile holds per-user profile data. Each user owns at most one
// profile; the unique index on UserID enforces that in the store.
type MyProfile struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	UserID                uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Passport              string    `gorm:"size:50" json:"passport,omitempty"`
	NeedRelocationSupport TriState  `gorm:"size:16;default:unspecified" json:"need_relocation_support"`
	NeedSponsorship       TriState  `gorm:"size:16;default:unspecified" json:"need_sponsorship"`
	CreatedAt             time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// Validate enforces the profile business rules.
func (p *MyProfile) Validate() error {
	if utf8.RuneCountInString(p.Passport) > MaxPassportLen {
		return &ValidationError{Field: "passport", Reason: "exceeds 50 characters"}
	}
	if !p.NeedRelocationSupport.Valid() {
		return &ValidationError{Field: "need_relocation_support", Reason: "must be yes, no or unspecified"}
	}
	if !p.NeedSponsorship.Valid() {
		return &ValidationError{Field: "need_sponsorship", Reason: "must be yes, no or unspecified"}
	}
	return nil
}

// MarkUpdated stamps the entity as modified at now.
func (p *MyProfile) MarkUpdated(now time.Time) {
	p.UpdatedAt = now.UTC()
}

// MaxPreferenceTitleLen caps the preference title.
const MaxPreferenceTitleLen = 200

// MyJobPreference is a named preference bundle under a profile. Deleting
// the profile cascades to its preferences.
type MyJobPreference struct {
	ID                uint         `gorm:"primarykey" json:"id"`
	UserID            uint         `gorm:"index:idx_preferences_user_title;not null" json:"user_id"`
	MyProfileID       uint         `gorm:"index;not null" json:"my_profile_id"`
	MyProfile         *MyProfile   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title             string       `gorm:"size:200;not null;index:idx_preferences_user_title" json:"title"`
	WorkModel         WorkModel    `gorm:"not null" json:"work_model"`
	Contract          ContractType `gorm:"not null" json:"contract"`
	OfferRelocation   bool         `json:"offer_relocation"`
	OfferSponsorship  bool         `json:"offer_sponsorship"`
	TotalCompensation *float64     `gorm:"type:decimal(18,2)" json:"total_compensation,omitempty"`
	Notes             string       `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt         time.Time    `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// Validate enforces the preference business rules.
func (p *MyJobPreference) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if utf8.RuneCountInString(p.Title) > MaxPreferenceTitleLen {
		return &ValidationError{Field: "title", Reason: "exceeds 200 characters"}
	}
	if p.MyProfileID == 0 {
		return &ValidationError{Field: "my_profile_id", Reason: "is required"}
	}
	if !p.WorkModel.Valid() {
		return &ValidationError{Field: "work_model", Reason: "is not a known work model"}
	}
	if !p.Contract.Valid() {
		return &ValidationError{Field: "contract", Reason: "is not a known contract type"}
	}
	if p.TotalCompensation != nil && *p.TotalCompensation < 0 {
		return &ValidationError{Field: "total_compensation", Reason: "must not be negative"}
	}
	if utf8.RuneCountInString(p.Notes) > MaxNotesLen {
		return &ValidationError{Field: "notes", Reason: "exceeds 1000 characters"}
	}
	return nil
}

// MarkUpdated stamps the entity as modified at now.
func (p *MyJobPreference) MarkUpdated(now time.Time) {
	p.UpdatedAt = now.UTC()
}
