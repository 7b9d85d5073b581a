// Package view holds the display and form projections of the domain
// entities. Everything here is a pure transformation: no I/O, and every
// timestamp comes from an instant the caller passes in.
package view

import (
	"time"

	"jobtrack/internal/model"
)

// recentWindowDays is the window used to flag an application as recent.
const recentWindowDays = 7

// JobApplyView is the read-side projection of one application.
type JobApplyView struct {
	ID               uint             `json:"id"`
	CompanyName      string           `json:"company_name"`
	CompanyCountry   string           `json:"company_country"`
	JobRole          string           `json:"job_role"`
	JobLink          string           `json:"job_link,omitempty"`
	DateOfApply      time.Time        `json:"date_of_apply"`
	NumberOfPhases   int              `json:"number_of_phases"`
	Status           model.JobStatus  `json:"status"`
	StatusDisplay    string           `json:"status_display"`
	StatusBadgeClass string           `json:"status_badge_class"`
	OfferSponsorship bool             `json:"offer_sponsorship"`
	OfferRelocation  bool             `json:"offer_relocation"`
	Notes            string           `json:"notes,omitempty"`
	DaysSinceApply   int              `json:"days_since_apply"`
	IsRecent         bool             `json:"is_recent"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// NewJobApplyView projects an entity for display. now anchors the derived
// recency fields.
func NewJobApplyView(job model.JobApply, now time.Time) JobApplyView {
	days := int(now.Sub(job.DateOfApply).Hours() / 24)
	return JobApplyView{
		ID:               job.ID,
		CompanyName:      job.CompanyName,
		CompanyCountry:   job.CompanyCountry,
		JobRole:          job.JobRole,
		JobLink:          job.JobLink,
		DateOfApply:      job.DateOfApply,
		NumberOfPhases:   job.NumberOfPhases,
		Status:           job.Status,
		StatusDisplay:    job.Status.String(),
		StatusBadgeClass: job.Status.BadgeClass(),
		OfferSponsorship: job.OfferSponsorship,
		OfferRelocation:  job.OfferRelocation,
		Notes:            job.Notes,
		DaysSinceApply:   days,
		IsRecent:         days <= recentWindowDays,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

// NewJobApplyViews projects a collection preserving order.
func NewJobApplyViews(jobs []model.JobApply, now time.Time) []JobApplyView {
	views := make([]JobApplyView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, NewJobApplyView(job, now))
	}
	return views
}

// JobApplyForm carries the user-editable fields of an application. ID zero
// means a new record.
type JobApplyForm struct {
	ID               uint            `json:"id"`
	CompanyName      string          `json:"company_name" binding:"required"`
	CompanyCountry   string          `json:"company_country" binding:"required"`
	JobRole          string          `json:"job_role" binding:"required"`
	JobLink          string          `json:"job_link"`
	DateOfApply      time.Time       `json:"date_of_apply" binding:"required"`
	NumberOfPhases   int             `json:"number_of_phases"`
	Status           model.JobStatus `json:"status"`
	OfferSponsorship bool            `json:"offer_sponsorship"`
	OfferRelocation  bool            `json:"offer_relocation"`
	Notes            string          `json:"notes"`
}

// NewJobApplyForm pre-fills a form from an entity for editing.
func NewJobApplyForm(job model.JobApply) JobApplyForm {
	return JobApplyForm{
		ID:               job.ID,
		CompanyName:      job.CompanyName,
		CompanyCountry:   job.CompanyCountry,
		JobRole:          job.JobRole,
		JobLink:          job.JobLink,
		DateOfApply:      job.DateOfApply,
		NumberOfPhases:   job.NumberOfPhases,
		Status:           job.Status,
		OfferSponsorship: job.OfferSponsorship,
		OfferRelocation:  job.OfferRelocation,
		Notes:            job.Notes,
	}
}

// ToEntity builds an entity from the form for userID. CreatedAt is set
// only for new records (ID zero); for existing records it stays zero and
// the repository keeps the stored creation time on update.
func (f JobApplyForm) ToEntity(userID uint, now time.Time) model.JobApply {
	phases := f.NumberOfPhases
	if phases == 0 {
		phases = model.MinPhases
	}

	job := model.JobApply{
		ID:               f.ID,
		CompanyName:      f.CompanyName,
		CompanyCountry:   f.CompanyCountry,
		JobRole:          f.JobRole,
		JobLink:          f.JobLink,
		DateOfApply:      f.DateOfApply,
		NumberOfPhases:   phases,
		Status:           f.Status,
		OfferSponsorship: f.OfferSponsorship,
		OfferRelocation:  f.OfferRelocation,
		Notes:            f.Notes,
		UserID:           userID,
	}
	if f.ID == 0 {
		job.CreatedAt = now.UTC()
	} else {
		job.MarkUpdated(now)
	}
	return job
}

// Apply overwrites the mutable fields of an existing entity from the form
// and stamps it as updated.
func (f JobApplyForm) Apply(job *model.JobApply, now time.Time) {
	job.CompanyName = f.CompanyName
	job.CompanyCountry = f.CompanyCountry
	job.JobRole = f.JobRole
	job.JobLink = f.JobLink
	job.DateOfApply = f.DateOfApply
	if f.NumberOfPhases != 0 {
		job.NumberOfPhases = f.NumberOfPhases
	}
	job.Status = f.Status
	job.OfferSponsorship = f.OfferSponsorship
	job.OfferRelocation = f.OfferRelocation
	job.Notes = f.Notes
	job.MarkUpdated(now)
}
