package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits shared by validation and the schema. Limits count
// characters, not bytes.
const (
	MaxCompanyNameLen    = 200
	MaxCompanyCountryLen = 100
	MaxJobRoleLen        = 200
	MaxJobLinkLen        = 500
	MaxNotesLen          = 1000

	MinPhases = 1
	MaxPhases = 10
)

// JobApply is one user's application to one job.
type JobApply struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CompanyName      string     `gorm:"size:200;not null" json:"company_name"`
	CompanyCountry   string     `gorm:"size:100;not null" json:"company_country"`
	JobRole          string     `gorm:"size:200;not null" json:"job_role"`
	JobLink          string     `gorm:"size:500" json:"job_link,omitempty"`
	DateOfApply      time.Time  `gorm:"index;not null" json:"date_of_apply"`
	NumberOfPhases   int        `gorm:"default:1" json:"number_of_phases"`
	Status           JobStatus  `gorm:"index;not null;default:0" json:"status"`
	OfferSponsorship bool       `json:"offer_sponsorship"`
	OfferRelocation  bool       `json:"offer_relocation"`
	Notes            string     `gorm:"size:1000" json:"notes,omitempty"`
	UserID           uint       `gorm:"index;not null" json:"user_id"`
	CreatedAt        time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

// Validate enforces the job application business rules against the given
// instant. It runs before every create and update.
func (j *JobApply) Validate(now time.Time) error {
	if strings.TrimSpace(j.CompanyName) == "" {
		return &ValidationError{Field: "company_name", Reason: "is required"}
	}
	if utf8.RuneCountInString(j.CompanyName) > MaxCompanyNameLen {
		return &ValidationError{Field: "company_name", Reason: "exceeds 200 characters"}
	}
	if strings.TrimSpace(j.CompanyCountry) == "" {
		return &ValidationError{Field: "company_country", Reason: "is required"}
	}
	if utf8.RuneCountInString(j.CompanyCountry) > MaxCompanyCountryLen {
		return &ValidationError{Field: "company_country", Reason: "exceeds 100 characters"}
	}
	if strings.TrimSpace(j.JobRole) == "" {
		return &ValidationError{Field: "job_role", Reason: "is required"}
	}
	if utf8.RuneCountInString(j.JobRole) > MaxJobRoleLen {
		return &ValidationError{Field: "job_role", Reason: "exceeds 200 characters"}
	}
	if j.JobLink != "" {
		if utf8.RuneCountInString(j.JobLink) > MaxJobLinkLen {
			return &ValidationError{Field: "job_link", Reason: "exceeds 500 characters"}
		}
		if u, err := url.Parse(j.JobLink); err != nil || u.Scheme == "" || u.Host == "" {
			return &ValidationError{Field: "job_link", Reason: "must be a valid URL"}
		}
	}
	if j.DateOfApply.IsZero() {
		return &ValidationError{Field: "date_of_apply", Reason: "is required"}
	}
	if j.DateOfApply.After(now) {
		return &ValidationError{Field: "date_of_apply", Reason: "cannot be in the future"}
	}
	if j.NumberOfPhases < MinPhases || j.NumberOfPhases > MaxPhases {
		return &ValidationError{Field: "number_of_phases", Reason: "must be between 1 and 10"}
	}
	if !j.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "is not a known status"}
	}
	if utf8.RuneCountInString(j.Notes) > MaxNotesLen {
		return &ValidationError{Field: "notes", Reason: "exceeds 1000 characters"}
	}
	return nil
}

// UpdateStatus moves the application to next. Backward moves are rejected
// unless the current status is InProgress.
func (j *JobApply) UpdateStatus(next JobStatus, now time.Time) error {
	if !j.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: j.Status, To: next}
	}
	j.Status = next
	j.MarkUpdated(now)
	return nil
}

// MarkUpdated stamps the entity as modified at now.
func (j *JobApply) MarkUpdated(now time.Time) {
	t := now.UTC()
	j.UpdatedAt = &t
}
