package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

// DashboardHandler aggregates a user's applications into summary stats.
type DashboardHandler struct {
	jobs  repository.JobApplyRepository
	clock model.Clock
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(jobs repository.JobApplyRepository, clock model.Clock) *DashboardHandler {
	return &DashboardHandler{jobs: jobs, clock: clock}
}

// Get computes the dashboard from all of the caller's applications. An empty
// portfolio yields zeroed counters rather than an error.
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	jobs, err := h.jobs.GetByUser(c.Request.Context(), userID)
	if err != nil {
		RepositoryError(c, err, "failed to load applications")
		return
	}

	c.JSON(http.StatusOK, view.NewDashboard(jobs, h.clock.Now()))
}
