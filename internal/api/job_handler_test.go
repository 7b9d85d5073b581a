package api

import (
	"context"
	"net/http"
	"testing"

	"jobtrack/internal/model"
	"jobtrack/internal/view"
)

func TestJobApplyCreate(t *testing.T) {
	h, _ := newJobHandler(t)

	form := view.JobApplyForm{
		CompanyName:    "Initech",
		CompanyCountry: "Portugal",
		JobRole:        "Backend Engineer",
		DateOfApply:    apiNow.AddDate(0, 0, -3),
	}
	c, w := testContext(t, http.MethodPost, "/v1/applications", form, 1)

	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got view.JobApplyView
	decodeBody(t, w, &got)
	if got.ID == 0 {
		t.Fatalf("expected assigned id, got %+v", got)
	}
	if got.Status != model.StatusNotApplied {
		t.Fatalf("expected default status NotApplied, got %v", got.Status)
	}
	if got.NumberOfPhases != model.MinPhases {
		t.Fatalf("expected phases defaulted to %d, got %d", model.MinPhases, got.NumberOfPhases)
	}
	if !got.CreatedAt.Equal(apiNow) {
		t.Fatalf("expected created_at %v, got %v", apiNow, got.CreatedAt)
	}
}

func TestJobApplyCreateRejectsFutureDate(t *testing.T) {
	h, _ := newJobHandler(t)

	form := view.JobApplyForm{
		CompanyName:    "Initech",
		CompanyCountry: "Portugal",
		JobRole:        "Backend Engineer",
		DateOfApply:    apiNow.AddDate(0, 0, 2),
	}
	c, w := testContext(t, http.MethodPost, "/v1/applications", form, 1)

	h.Create(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)
}

func TestJobApplyGetIsOwnerScoped(t *testing.T) {
	h, repo := newJobHandler(t)

	job := model.JobApply{
		CompanyName:    "Globex",
		CompanyCountry: "Germany",
		JobRole:        "SRE",
		DateOfApply:    apiNow.AddDate(0, 0, -10),
		NumberOfPhases: 2,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/v1/applications/1", nil, 2)
	setIDParam(c, job.ID)

	h.Get(c)
	requireStatus(t, w, http.StatusNotFound)
}

func TestJobApplyListStatusFilter(t *testing.T) {
	h, repo := newJobHandler(t)

	statuses := []model.JobStatus{
		model.StatusApplied,
		model.StatusInProgress,
		model.StatusInProgress,
		model.StatusAccepted,
	}
	for i, s := range statuses {
		job := model.JobApply{
			CompanyName:    "Company-" + string(rune('A'+i)),
			CompanyCountry: "Spain",
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

	c, w := testContext(t, http.MethodGet, "/v1/applications?status=2", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var got []view.JobApplyView
	decodeBody(t, w, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 in-progress applications, got %d", len(got))
	}
	for _, v := range got {
		if v.Status != model.StatusInProgress {
			t.Fatalf("unexpected status in filtered list: %v", v.Status)
		}
	}
}

func TestJobApplyListRejectsUnknownStatusFilter(t *testing.T) {
	h, _ := newJobHandler(t)

	c, w := testContext(t, http.MethodGet, "/v1/applications?status=42", nil, 1)
	h.List(c)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestJobApplyStatusTransition(t *testing.T) {
	h, repo := newJobHandler(t)

	job := model.JobApply{
		CompanyName:    "Hooli",
		CompanyCountry: "Ireland",
		JobRole:        "Platform Engineer",
		DateOfApply:    apiNow.AddDate(0, 0, -20),
		NumberOfPhases: 3,
		Status:         model.StatusApplied,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	c, w := testContext(t, http.MethodPatch, "/v1/applications/1/status",
		map[string]any{"status": int(model.StatusInProgress)}, 1)
	setIDParam(c, job.ID)

	h.UpdateStatus(c)
	requireStatus(t, w, http.StatusOK)

	var got view.JobApplyView
	decodeBody(t, w, &got)
	if got.Status != model.StatusInProgress {
		t.Fatalf("expected InProgress, got %v", got.Status)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(apiNow) {
		t.Fatalf("expected updated_at stamped to %v, got %v", apiNow, got.UpdatedAt)
	}
}

func TestJobApplyStatusBackwardMoveRejected(t *testing.T) {
	h, repo := newJobHandler(t)

	job := model.JobApply{
		CompanyName:    "Hooli",
		CompanyCountry: "Ireland",
		JobRole:        "Platform Engineer",
		DateOfApply:    apiNow.AddDate(0, 0, -20),
		NumberOfPhases: 3,
		Status:         model.StatusAccepted,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	c, w := testContext(t, http.MethodPatch, "/v1/applications/1/status",
		map[string]any{"status": int(model.StatusApplied)}, 1)
	setIDParam(c, job.ID)

	h.UpdateStatus(c)
	requireStatus(t, w, http.StatusConflict)

	// InProgress may move anywhere, including backwards.
	job2 := model.JobApply{
		CompanyName:    "Hooli",
		CompanyCountry: "Ireland",
		JobRole:        "Data Engineer",
		DateOfApply:    apiNow.AddDate(0, 0, -20),
		NumberOfPhases: 3,
		Status:         model.StatusInProgress,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job2); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	c2, w2 := testContext(t, http.MethodPatch, "/v1/applications/2/status",
		map[string]any{"status": int(model.StatusApplied)}, 1)
	setIDParam(c2, job2.ID)

	h.UpdateStatus(c2)
	requireStatus(t, w2, http.StatusOK)
}

func TestJobApplyUpdatePreservesCreatedAt(t *testing.T) {
	h, repo := newJobHandler(t)

	job := model.JobApply{
		CompanyName:    "Initrode",
		CompanyCountry: "France",
		JobRole:        "Go Developer",
		DateOfApply:    apiNow.AddDate(0, 0, -5),
		NumberOfPhases: 1,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	form := view.JobApplyForm{
		CompanyName:    "Initrode",
		CompanyCountry: "France",
		JobRole:        "Senior Go Developer",
		DateOfApply:    apiNow.AddDate(0, 0, -5),
		NumberOfPhases: 2,
	}
	c, w := testContext(t, http.MethodPut, "/v1/applications/1", form, 1)
	setIDParam(c, job.ID)

	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	stored, err := repo.GetByID(context.Background(), job.ID, 1)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if stored.JobRole != "Senior Go Developer" {
		t.Fatalf("expected role updated, got %q", stored.JobRole)
	}
	if !stored.CreatedAt.Equal(apiNow) {
		t.Fatalf("expected created_at preserved as %v, got %v", apiNow, stored.CreatedAt)
	}
	if stored.UpdatedAt == nil {
		t.Fatal("expected updated_at stamped")
	}
}

func TestJobApplyDelete(t *testing.T) {
	h, repo := newJobHandler(t)

	job := model.JobApply{
		CompanyName:    "Vandelay",
		CompanyCountry: "Portugal",
		JobRole:        "Importer",
		DateOfApply:    apiNow.AddDate(0, 0, -2),
		NumberOfPhases: 1,
		UserID:         1,
	}
	if err := repo.Add(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	c, w := testContext(t, http.MethodDelete, "/v1/applications/1", nil, 1)
	setIDParam(c, job.ID)

	h.Delete(c)
	flushStatus(c)
	requireStatus(t, w, http.StatusNoContent)

	if _, err := repo.GetByID(context.Background(), job.ID, 1); err == nil {
		t.Fatal("expected application gone after delete")
	}
}

func TestJobApplyDeleteMissing(t *testing.T) {
	h, _ := newJobHandler(t)

	c, w := testContext(t, http.MethodDelete, "/v1/applications/99", nil, 1)
	setIDParam(c, 99)

	h.Delete(c)
	requireStatus(t, w, http.StatusNotFound)
}
