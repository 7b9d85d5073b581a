package repository

import (
	"context"
	"errors"
	"testing"

	"jobtrack/internal/model"
)

func seedPreference(t *testing.T, repo MyJobPreferenceRepository, userID, profileID uint, title string, wm model.WorkModel, ct model.ContractType) *model.MyJobPreference {
	t.Helper()
	pref := &model.MyJobPreference{
		UserID:      userID,
		MyProfileID: profileID,
		Title:       title,
		WorkModel:   wm,
		Contract:    ct,
	}
	if err := repo.Add(context.Background(), pref); err != nil {
		t.Fatalf("seed preference %q: %v", title, err)
	}
	return pref
}

func TestPreferenceOrderingAndFilters(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	profiles := NewMyProfileRepository(db, fixedClock(repoNow))
	repo := NewMyJobPreferenceRepository(db, fixedClock(repoNow))
	ctx := context.Background()

	profile := seedProfile(t, profiles, 1)

	seedPreference(t, repo, 1, profile.ID, "Zurich fintech", model.WorkModelOnSite, model.ContractPermanent)
	seedPreference(t, repo, 1, profile.ID, "Anywhere remote", model.WorkModelRemote, model.ContractFreelance)
	seedPreference(t, repo, 1, profile.ID, "Berlin hybrid", model.WorkModelHybrid, model.ContractPermanent)

	all, err := repo.GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 preferences, got %d", len(all))
	}
	if all[0].Title != "Anywhere remote" || all[2].Title != "Zurich fintech" {
		t.Fatalf("expected title-ascending order, got %q .. %q", all[0].Title, all[2].Title)
	}

	remote, err := repo.GetByWorkModel(ctx, 1, model.WorkModelRemote)
	if err != nil {
		t.Fatalf("GetByWorkModel: %v", err)
	}
	if len(remote) != 1 || remote[0].Title != "Anywhere remote" {
		t.Fatalf("remote filter wrong: %+v", remote)
	}

	permanent, err := repo.GetByContract(ctx, 1, model.ContractPermanent)
	if err != nil {
		t.Fatalf("GetByContract: %v", err)
	}
	if len(permanent) != 2 {
		t.Fatalf("expected 2 permanent preferences, got %d", len(permanent))
	}

	byProfile, err := repo.GetByProfile(ctx, profile.ID, 1)
	if err != nil || len(byProfile) != 3 {
		t.Fatalf("GetByProfile = %d, %v; want 3", len(byProfile), err)
	}

	count, err := repo.Count(ctx, 1)
	if err != nil || count != 3 {
		t.Fatalf("Count = %d, %v; want 3", count, err)
	}
}

func TestPreferenceRequiresOwnedProfile(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	profiles := NewMyProfileRepository(db, fixedClock(repoNow))
	repo := NewMyJobPreferenceRepository(db, fixedClock(repoNow))
	ctx := context.Background()

	theirs := seedProfile(t, profiles, 2)

	pref := &model.MyJobPreference{
		UserID:      1,
		MyProfileID: theirs.ID,
		Title:       "Sneaky",
		WorkModel:   model.WorkModelRemote,
		Contract:    model.ContractPermanent,
	}
	if err := repo.Add(ctx, pref); !errors.Is(err, ErrNotFound) {
		t.Fatalf("attaching to a foreign profile should be not found, got %v", err)
	}
}

func TestPreferenceUpdateAndDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	profiles := NewMyProfileRepository(db, fixedClock(repoNow))
	repo := NewMyJobPreferenceRepository(db, fixedClock(repoNow))
	ctx := context.Background()

	profile := seedProfile(t, profiles, 1)
	pref := seedPreference(t, repo, 1, profile.ID, "Remote EU", model.WorkModelRemote, model.ContractPermanent)

	comp := 90000.0
	pref.TotalCompensation = &comp
	pref.Contract = model.ContractFreelance
	if err := repo.Update(ctx, pref); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, pref.ID, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Contract != model.ContractFreelance || got.TotalCompensation == nil || *got.TotalCompensation != comp {
		t.Fatalf("update not applied: %+v", got)
	}

	ok, err := repo.Delete(ctx, pref.ID, 2)
	if err != nil || ok {
		t.Fatalf("foreign delete = %v, %v; want false", ok, err)
	}
	ok, err = repo.Delete(ctx, pref.ID, 1)
	if err != nil || !ok {
		t.Fatalf("owner delete = %v, %v; want true", ok, err)
	}
}
