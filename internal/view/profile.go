package view

import (
	"time"

	"jobtrack/internal/model"
)

// ProfileView is the read-side projection of a profile, optionally with
// its preference bundles attached.
type ProfileView struct {
	ID                    uint             `json:"id"`
	UserID                uint             `json:"user_id"`
	Passport              string           `json:"passport,omitempty"`
	NeedRelocationSupport model.TriState   `json:"need_relocation_support"`
	NeedSponsorship       model.TriState   `json:"need_sponsorship"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	JobPreferences        []PreferenceView `json:"job_preferences"`
}

// NewProfileView projects a profile with its preferences.
func NewProfileView(profile model.MyProfile, prefs []model.MyJobPreference) ProfileView {
	return ProfileView{
		ID:                    profile.ID,
		UserID:                profile.UserID,
		Passport:              profile.Passport,
		NeedRelocationSupport: profile.NeedRelocationSupport.Normalize(),
		NeedSponsorship:       profile.NeedSponsorship.Normalize(),
		CreatedAt:             profile.CreatedAt,
		UpdatedAt:             profile.UpdatedAt,
		JobPreferences:        NewPreferenceViews(prefs),
	}
}

// ProfileForm carries the user-editable fields of a profile.
type ProfileForm struct {
	ID                    uint           `json:"id"`
	Passport              string         `json:"passport"`
	NeedRelocationSupport model.TriState `json:"need_relocation_support"`
	NeedSponsorship       model.TriState `json:"need_sponsorship"`
}

// NewProfileForm pre-fills a form from an entity for editing.
func NewProfileForm(profile model.MyProfile) ProfileForm {
	return ProfileForm{
		ID:                    profile.ID,
		Passport:              profile.Passport,
		NeedRelocationSupport: profile.NeedRelocationSupport.Normalize(),
		NeedSponsorship:       profile.NeedSponsorship.Normalize(),
	}
}

// ToEntity builds a profile entity from the form for userID.
func (f ProfileForm) ToEntity(userID uint, now time.Time) model.MyProfile {
	profile := model.MyProfile{
		ID:                    f.ID,
		UserID:                userID,
		Passport:              f.Passport,
		NeedRelocationSupport: f.NeedRelocationSupport.Normalize(),
		NeedSponsorship:       f.NeedSponsorship.Normalize(),
		UpdatedAt:             now.UTC(),
	}
	if f.ID == 0 {
		profile.CreatedAt = now.UTC()
	}
	return profile
}

// PreferenceView is the read-side projection of a preference bundle.
type PreferenceView struct {
	ID                uint               `json:"id"`
	UserID            uint               `json:"user_id"`
	MyProfileID       uint               `json:"my_profile_id"`
	Title             string             `json:"title"`
	WorkModel         model.WorkModel    `json:"work_model"`
	WorkModelDisplay  string             `json:"work_model_display"`
	Contract          model.ContractType `json:"contract"`
	ContractDisplay   string             `json:"contract_display"`
	OfferRelocation   bool               `json:"offer_relocation"`
	OfferSponsorship  bool               `json:"offer_sponsorship"`
	TotalCompensation *float64           `json:"total_compensation,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewPreferenceView projects a preference for display.
func NewPreferenceView(pref model.MyJobPreference) PreferenceView {
	return PreferenceView{
		ID:                pref.ID,
		UserID:            pref.UserID,
		MyProfileID:       pref.MyProfileID,
		Title:             pref.Title,
		WorkModel:         pref.WorkModel,
		WorkModelDisplay:  pref.WorkModel.String(),
		Contract:          pref.Contract,
		ContractDisplay:   pref.Contract.String(),
		OfferRelocation:   pref.OfferRelocation,
		OfferSponsorship:  pref.OfferSponsorship,
		TotalCompensation: pref.TotalCompensation,
		Notes:             pref.Notes,
		CreatedAt:         pref.CreatedAt,
		UpdatedAt:         pref.UpdatedAt,
	}
}

// NewPreferenceViews projects a collection preserving order.
func NewPreferenceViews(prefs []model.MyJobPreference) []PreferenceView {
	views := make([]PreferenceView, 0, len(prefs))
	for _, pref := range prefs {
		views = append(views, NewPreferenceView(pref))
	}
	return views
}

// PreferenceForm carries the user-editable fields of a preference bundle.
type PreferenceForm struct {
	ID                uint               `json:"id"`
	MyProfileID       uint               `json:"my_profile_id" binding:"required"`
	Title             string             `json:"title" binding:"required"`
	WorkModel         model.WorkModel    `json:"work_model" binding:"required"`
	Contract          model.ContractType `json:"contract" binding:"required"`
	OfferRelocation   bool               `json:"offer_relocation"`
	OfferSponsorship  bool               `json:"offer_sponsorship"`
	TotalCompensation *float64           `json:"total_compensation"`
	Notes             string             `json:"notes"`
}

// NewPreferenceForm pre-fills a form from an entity for editing.
func NewPreferenceForm(pref model.MyJobPreference) PreferenceForm {
	return PreferenceForm{
		ID:                pref.ID,
		MyProfileID:       pref.MyProfileID,
		Title:             pref.Title,
		WorkModel:         pref.WorkModel,
		Contract:          pref.Contract,
		OfferRelocation:   pref.OfferRelocation,
		OfferSponsorship:  pref.OfferSponsorship,
		TotalCompensation: pref.TotalCompensation,
		Notes:             pref.Notes,
	}
}

// ToEntity builds a preference entity from the form for userID.
func (f PreferenceForm) ToEntity(userID uint, now time.Time) model.MyJobPreference {
	pref := model.MyJobPreference{
		ID:                f.ID,
		UserID:            userID,
		MyProfileID:       f.MyProfileID,
		Title:             f.Title,
		WorkModel:         f.WorkModel,
		Contract:          f.Contract,
		OfferRelocation:   f.OfferRelocation,
		OfferSponsorship:  f.OfferSponsorship,
		TotalCompensation: f.TotalCompensation,
		Notes:             f.Notes,
		UpdatedAt:         now.UTC(),
	}
	if f.ID == 0 {
		pref.CreatedAt = now.UTC()
	}
	return pref
}
