package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

// JobApplyHandler serves the job application CRUD endpoints.
type JobApplyHandler struct {
	repo  repository.JobApplyRepository
	clock model.Clock
}

// NewJobApplyHandler builds the handler.
func NewJobApplyHandler(repo repository.JobApplyRepository, clock model.Clock) *JobApplyHandler {
	return &JobApplyHandler{repo: repo, clock: clock}
}

// List returns the user's applications. Supports ?status= for an exact
// status filter and ?page=/&page_size= for paging; without either it
// returns the full ordered set.
func (h *JobApplyHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()

	if raw := c.Query("status"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil || !model.JobStatus(code).Valid() {
			BadRequest(c, "invalid status filter")
			return
		}
		jobs, err := h.repo.GetByStatus(ctx, userID, model.JobStatus(code))
		if err != nil {
			RepositoryError(c, err, "failed to list applications")
			return
		}
		c.JSON(http.StatusOK, view.NewJobApplyViews(jobs, h.clock.Now()))
		return
	}

	if c.Query("page") != "" || c.Query("page_size") != "" {
		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "page_size", 10)
		jobs, err := h.repo.GetPaged(ctx, userID, page, pageSize)
		if err != nil {
			RepositoryError(c, err, "failed to list applications")
			return
		}
		c.JSON(http.StatusOK, view.NewJobApplyViews(jobs, h.clock.Now()))
		return
	}

	jobs, err := h.repo.GetByUser(ctx, userID)
	if err != nil {
		RepositoryError(c, err, "failed to list applications")
		return
	}
	c.JSON(http.StatusOK, view.NewJobApplyViews(jobs, h.clock.Now()))
}

// Get returns one application owned by the user.
func (h *JobApplyHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid application id")
		return
	}

	job, err := h.repo.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load application")
		return
	}
	c.JSON(http.StatusOK, view.NewJobApplyView(*job, h.clock.Now()))
}

// Create records a new application for the user.
func (h *JobApplyHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var form view.JobApplyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}
	form.ID = 0

	job := form.ToEntity(userID, h.clock.Now())
	if err := h.repo.Add(c.Request.Context(), &job); err != nil {
		RepositoryError(c, err, "failed to create application")
		return
	}

	middleware.LoggerFromContext(c).Info("application created",
		slog.Uint64("job_id", uint64(job.ID)),
		slog.Uint64("user_id", uint64(userID)),
	)
	c.JSON(http.StatusCreated, view.NewJobApplyView(job, h.clock.Now()))
}

// Update overwrites the editable fields of an application.
func (h *JobApplyHandler) Update(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid application id")
		return
	}

	var form view.JobApplyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}
	form.ID = id

	job := form.ToEntity(userID, h.clock.Now())
	if err := h.repo.Update(c.Request.Context(), &job); err != nil {
		RepositoryError(c, err, "failed to update application")
		return
	}
	c.JSON(http.StatusOK, view.NewJobApplyView(job, h.clock.Now()))
}

type statusUpdateRequest struct {
	Status model.JobStatus `json:"status"`
}

// UpdateStatus moves an application through the status pipeline. Backward
// moves are rejected unless the application is in progress.
func (h *JobApplyHandler) UpdateStatus(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid application id")
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		BadRequest(c, "unknown status")
		return
	}

	ctx := c.Request.Context()
	job, err := h.repo.GetByID(ctx, id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load application")
		return
	}

	if err := job.UpdateStatus(req.Status, h.clock.Now()); err != nil {
		RepositoryError(c, err, "failed to update status")
		return
	}
	if err := h.repo.Update(ctx, job); err != nil {
		RepositoryError(c, err, "failed to persist status")
		return
	}

	middleware.LoggerFromContext(c).Info("application status changed",
		slog.Uint64("job_id", uint64(job.ID)),
		slog.String("status", job.Status.String()),
	)
	c.JSON(http.StatusOK, view.NewJobApplyView(*job, h.clock.Now()))
}

// Delete removes an application owned by the user.
func (h *JobApplyHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid application id")
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to delete application")
		return
	}
	if !deleted {
		NotFound(c, "application not found")
		return
	}
	c.Status(http.StatusNoContent)
}
