package view

import (
	"reflect"
	"testing"
	"time"

	"jobtrack/internal/model"
)

func TestJobApplyFormRoundTrip(t *testing.T) {
	t.Parallel()

	created := viewNow.AddDate(0, -1, 0)
	entity := model.JobApply{
		ID:               7,
		CompanyName:      "Acme",
		CompanyCountry:   "Norway",
		JobRole:          "SRE",
		JobLink:          "https://acme.example/jobs/7",
		DateOfApply:      viewNow.AddDate(0, 0, -4),
		NumberOfPhases:   3,
		Status:           model.StatusWaitingResponse,
		OfferSponsorship: true,
		OfferRelocation:  false,
		Notes:            "second round scheduled",
		UserID:           1,
		CreatedAt:        created,
	}

	form := NewJobApplyForm(entity)
	back := form.ToEntity(1, viewNow)

	// Only audit timestamps may differ on the round trip.
	entityNoAudit, backNoAudit := entity, back
	entityNoAudit.CreatedAt, backNoAudit.CreatedAt = time.Time{}, time.Time{}
	entityNoAudit.UpdatedAt, backNoAudit.UpdatedAt = nil, nil
	if !reflect.DeepEqual(entityNoAudit, backNoAudit) {
		t.Fatalf("round trip changed editable fields:\n  in:  %+v\n  out: %+v", entityNoAudit, backNoAudit)
	}

	// Existing record: CreatedAt stays zero (the store keeps the original),
	// UpdatedAt is stamped.
	if !back.CreatedAt.IsZero() {
		t.Fatalf("existing record should not carry a new CreatedAt, got %v", back.CreatedAt)
	}
	if back.UpdatedAt == nil || !back.UpdatedAt.Equal(viewNow) {
		t.Fatalf("existing record should stamp UpdatedAt, got %v", back.UpdatedAt)
	}
}

func TestJobApplyFormNewEntity(t *testing.T) {
	t.Parallel()

	form := JobApplyForm{
		CompanyName:    "Acme",
		CompanyCountry: "Norway",
		JobRole:        "SRE",
		DateOfApply:    viewNow.AddDate(0, 0, -1),
	}

	entity := form.ToEntity(9, viewNow)
	if entity.UserID != 9 {
		t.Fatalf("user not assigned, got %d", entity.UserID)
	}
	if !entity.CreatedAt.Equal(viewNow) {
		t.Fatalf("new record should stamp CreatedAt = now, got %v", entity.CreatedAt)
	}
	if entity.UpdatedAt != nil {
		t.Fatalf("new record should not carry UpdatedAt, got %v", entity.UpdatedAt)
	}
	if entity.NumberOfPhases != model.MinPhases {
		t.Fatalf("unset phases should default to %d, got %d", model.MinPhases, entity.NumberOfPhases)
	}
	if entity.Status != model.StatusNotApplied {
		t.Fatalf("unset status should default to NotApplied, got %v", entity.Status)
	}
}

func TestJobApplyFormApply(t *testing.T) {
	t.Parallel()

	created := viewNow.AddDate(0, -2, 0)
	entity := model.JobApply{
		ID:             3,
		CompanyName:    "Before",
		CompanyCountry: "Sweden",
		JobRole:        "Engineer",
		DateOfApply:    viewNow.AddDate(0, 0, -30),
		NumberOfPhases: 1,
		Status:         model.StatusApplied,
		UserID:         1,
		CreatedAt:      created,
	}

	form := NewJobApplyForm(entity)
	form.CompanyName = "After"
	form.Status = model.StatusInProgress

	form.Apply(&entity, viewNow)

	if entity.CompanyName != "After" || entity.Status != model.StatusInProgress {
		t.Fatalf("apply did not overwrite fields: %+v", entity)
	}
	if !entity.CreatedAt.Equal(created) {
		t.Fatalf("apply must not touch CreatedAt, got %v", entity.CreatedAt)
	}
	if entity.UpdatedAt == nil || !entity.UpdatedAt.Equal(viewNow) {
		t.Fatalf("apply must stamp UpdatedAt, got %v", entity.UpdatedAt)
	}
}

func TestProfileFormRoundTrip(t *testing.T) {
	t.Parallel()

	entity := model.MyProfile{
		ID:                    4,
		UserID:                1,
		Passport:              "PT",
		NeedRelocationSupport: model.TriStateYes,
		NeedSponsorship:       model.TriStateUnspecified,
		CreatedAt:             viewNow.AddDate(0, -3, 0),
		UpdatedAt:             viewNow.AddDate(0, -1, 0),
	}

	back := NewProfileForm(entity).ToEntity(1, viewNow)
	if back.Passport != entity.Passport ||
		back.NeedRelocationSupport != entity.NeedRelocationSupport ||
		back.NeedSponsorship != entity.NeedSponsorship {
		t.Fatalf("round trip changed editable fields: %+v", back)
	}
	if !back.UpdatedAt.Equal(viewNow) {
		t.Fatalf("UpdatedAt should be stamped, got %v", back.UpdatedAt)
	}
}

func TestPreferenceViewDisplayStrings(t *testing.T) {
	t.Parallel()

	pref := model.MyJobPreference{
		ID:          2,
		UserID:      1,
		MyProfileID: 4,
		Title:       "Remote EU",
		WorkModel:   model.WorkModelRemote,
		Contract:    model.ContractUnspecifiedDuration,
	}

	v := NewPreferenceView(pref)
	if v.WorkModelDisplay != "Remote" {
		t.Fatalf("work model display = %q", v.WorkModelDisplay)
	}
	if v.ContractDisplay != "Unspecified Duration" {
		t.Fatalf("contract display = %q", v.ContractDisplay)
	}
}

func TestJobApplyViewRecency(t *testing.T) {
	t.Parallel()

	recent := NewJobApplyView(jobWithStatus(model.StatusApplied, "Italy", viewNow.AddDate(0, 0, -3)), viewNow)
	if !recent.IsRecent || recent.DaysSinceApply != 3 {
		t.Fatalf("expected recent with 3 days, got recent=%v days=%d", recent.IsRecent, recent.DaysSinceApply)
	}

	old := NewJobApplyView(jobWithStatus(model.StatusApplied, "Italy", viewNow.AddDate(0, 0, -8)), viewNow)
	if old.IsRecent {
		t.Fatal("8-day-old application should not be recent")
	}
	if old.StatusDisplay != "Applied" || old.StatusBadgeClass != "badge bg-primary" {
		t.Fatalf("display fields wrong: %q %q", old.StatusDisplay, old.StatusBadgeClass)
	}
}
