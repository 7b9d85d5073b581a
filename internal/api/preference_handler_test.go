package api

import (
	"context"
	"net/http"
	"testing"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

func newPreferenceHandler(t *testing.T) (*PreferenceHandler, repository.MyProfileRepository, repository.MyJobPreferenceRepository) {
	t.Helper()
	db := newTestDB(t)
	profiles := repository.NewMyProfileRepository(db, model.FixedClock(apiNow))
	prefs := repository.NewMyJobPreferenceRepository(db, model.FixedClock(apiNow))
	return NewPreferenceHandler(prefs, model.FixedClock(apiNow)), profiles, prefs
}

func seedProfile(t *testing.T, profiles repository.MyProfileRepository, userID uint) model.MyProfile {
	t.Helper()
	profile := model.MyProfile{UserID: userID}
	if err := profiles.Add(context.Background(), &profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func TestPreferenceCreate(t *testing.T) {
	h, profiles, _ := newPreferenceHandler(t)
	profile := seedProfile(t, profiles, 1)

	form := view.PreferenceForm{
		MyProfileID: profile.ID,
		Title:       "Remote Go",
		WorkModel:   model.WorkModelRemote,
		Contract:    model.ContractPermanent,
	}
	c, w := testContext(t, http.MethodPost, "/v1/preferences", form, 1)

	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got view.PreferenceView
	decodeBody(t, w, &got)
	if got.WorkModelDisplay != "Remote" || got.ContractDisplay != "Permanent" {
		t.Fatalf("unexpected display strings: %+v", got)
	}
}

func TestPreferenceCreateForeignProfile(t *testing.T) {
	h, profiles, _ := newPreferenceHandler(t)
	profile := seedProfile(t, profiles, 2)

	form := view.PreferenceForm{
		MyProfileID: profile.ID,
		Title:       "Remote Go",
		WorkModel:   model.WorkModelRemote,
		Contract:    model.ContractPermanent,
	}
	c, w := testContext(t, http.MethodPost, "/v1/preferences", form, 1)

	h.Create(c)
	requireStatus(t, w, http.StatusNotFound)
}

func TestPreferenceListFilters(t *testing.T) {
	h, profiles, prefs := newPreferenceHandler(t)
	profile := seedProfile(t, profiles, 1)

	seeds := []model.MyJobPreference{
		{UserID: 1, MyProfileID: profile.ID, Title: "Remote Go", WorkModel: model.WorkModelRemote, Contract: model.ContractPermanent},
		{UserID: 1, MyProfileID: profile.ID, Title: "Hybrid Lisbon", WorkModel: model.WorkModelHybrid, Contract: model.ContractPermanent},
		{UserID: 1, MyProfileID: profile.ID, Title: "Freelance Gig", WorkModel: model.WorkModelRemote, Contract: model.ContractFreelance},
	}
	for i := range seeds {
		if err := prefs.Add(context.Background(), &seeds[i]); err != nil {
			t.Fatalf("seed preference: %v", err)
		}
	}

	c, w := testContext(t, http.MethodGet, "/v1/preferences?work_model=3", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var byModel []view.PreferenceView
	decodeBody(t, w, &byModel)
	if len(byModel) != 2 {
		t.Fatalf("expected 2 remote preferences, got %d", len(byModel))
	}

	c, w = testContext(t, http.MethodGet, "/v1/preferences?contract=7", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var byContract []view.PreferenceView
	decodeBody(t, w, &byContract)
	if len(byContract) != 1 || byContract[0].Title != "Freelance Gig" {
		t.Fatalf("unexpected contract filter result: %+v", byContract)
	}

	c, w = testContext(t, http.MethodGet, "/v1/preferences?work_model=9", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestPreferenceListOrderedByTitle(t *testing.T) {
	h, profiles, prefs := newPreferenceHandler(t)
	profile := seedProfile(t, profiles, 1)

	for _, title := range []string{"Zed Systems", "Alpha Labs", "Mid Corp"} {
		pref := model.MyJobPreference{
			UserID:      1,
			MyProfileID: profile.ID,
			Title:       title,
			WorkModel:   model.WorkModelOnSite,
			Contract:    model.ContractPermanent,
		}
		if err := prefs.Add(context.Background(), &pref); err != nil {
			t.Fatalf("seed preference: %v", err)
		}
	}

	c, w := testContext(t, http.MethodGet, "/v1/preferences", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var got []view.PreferenceView
	decodeBody(t, w, &got)
	want := []string{"Alpha Labs", "Mid Corp", "Zed Systems"}
	if len(got) != len(want) {
		t.Fatalf("expected %d preferences, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q got %q", i, title, got[i].Title)
		}
	}
}

func TestPreferenceDeleteForeignIsNotFound(t *testing.T) {
	h, profiles, prefs := newPreferenceHandler(t)
	profile := seedProfile(t, profiles, 2)

	pref := model.MyJobPreference{
		UserID:      2,
		MyProfileID: profile.ID,
		Title:       "Remote Go",
		WorkModel:   model.WorkModelRemote,
		Contract:    model.ContractPermanent,
	}
	if err := prefs.Add(context.Background(), &pref); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	c, w := testContext(t, http.MethodDelete, "/v1/preferences/1", nil, 1)
	setIDParam(c, pref.ID)

	h.Delete(c)
	requireStatus(t, w, http.StatusNotFound)
}
