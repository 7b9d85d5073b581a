package api

import (
	"context"
	"net/http"
	"testing"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewJobApplyRepository(db, model.FixedClock(apiNow))
	h := NewDashboardHandler(repo, model.FixedClock(apiNow))

	statuses := []model.JobStatus{
		model.StatusApplied,
		model.StatusInProgress,
		model.StatusAccepted,
		model.StatusDenied,
	}
	for i, s := range statuses {
		job := model.JobApply{
			CompanyName:    "Company",
			CompanyCountry: "Portugal",
			JobRole:        "Engineer",
			DateOfApply:    apiNow.AddDate(0, 0, -i-1),
			NumberOfPhases: 1,
			Status:         s,
			UserID:         1,
		}
		if err := repo.Add(context.Background(), &job); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	c, w := testContext(t, http.MethodGet, "/v1/dashboard", nil, 1)
	h.Get(c)
	requireStatus(t, w, http.StatusOK)

	var got view.Dashboard
	decodeBody(t, w, &got)

	if got.TotalApplications != 4 {
		t.Fatalf("expected 4 total, got %d", got.TotalApplications)
	}
	if got.PendingApplications != 1 {
		t.Fatalf("expected 1 pending, got %d", got.PendingApplications)
	}
	if got.FinishedApplications != 2 {
		t.Fatalf("expected 2 finished, got %d", got.FinishedApplications)
	}
	if got.SuccessRate != 25.0 {
		t.Fatalf("expected success rate 25.0, got %v", got.SuccessRate)
	}
	if got.ResponseRate != 50.0 {
		t.Fatalf("expected response rate 50.0, got %v", got.ResponseRate)
	}
	if !got.HasApplications {
		t.Fatal("expected has_applications true")
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewJobApplyRepository(db, model.FixedClock(apiNow))
	h := NewDashboardHandler(repo, model.FixedClock(apiNow))

	c, w := testContext(t, http.MethodGet, "/v1/dashboard", nil, 1)
	h.Get(c)
	requireStatus(t, w, http.StatusOK)

	var got view.Dashboard
	decodeBody(t, w, &got)
	if got.TotalApplications != 0 || got.SuccessRate != 0 || got.ResponseRate != 0 {
		t.Fatalf("expected zeroed dashboard, got %+v", got)
	}
	if got.HasApplications {
		t.Fatal("expected has_applications false")
	}
}
