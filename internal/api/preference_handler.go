package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

// PreferenceHandler serves job preference bundles hanging off a profile.
type PreferenceHandler struct {
	prefs repository.MyJobPreferenceRepository
	clock model.Clock
}

// NewPreferenceHandler builds the handler.
func NewPreferenceHandler(prefs repository.MyJobPreferenceRepository, clock model.Clock) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, clock: clock}
}

// List returns the user's preferences ordered by title. Supports exact
// filters (?work_model=, ?contract=) and offset paging (?page=&page_size=).
func (h *PreferenceHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	ctx := c.Request.Context()

	if raw := c.Query("work_model"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !model.WorkModel(n).Valid() {
			BadRequest(c, "invalid work_model filter")
			return
		}
		prefs, err := h.prefs.GetByWorkModel(ctx, userID, model.WorkModel(n))
		if err != nil {
			RepositoryError(c, err, "failed to list preferences")
			return
		}
		c.JSON(http.StatusOK, view.NewPreferenceViews(prefs))
		return
	}

	if raw := c.Query("contract"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !model.ContractType(n).Valid() {
			BadRequest(c, "invalid contract filter")
			return
		}
		prefs, err := h.prefs.GetByContract(ctx, userID, model.ContractType(n))
		if err != nil {
			RepositoryError(c, err, "failed to list preferences")
			return
		}
		c.JSON(http.StatusOK, view.NewPreferenceViews(prefs))
		return
	}

	if c.Query("page") != "" || c.Query("page_size") != "" {
		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "page_size", 10)
		prefs, err := h.prefs.GetPaged(ctx, userID, page, pageSize)
		if err != nil {
			RepositoryError(c, err, "failed to list preferences")
			return
		}
		c.JSON(http.StatusOK, view.NewPreferenceViews(prefs))
		return
	}

	prefs, err := h.prefs.GetByUser(ctx, userID)
	if err != nil {
		RepositoryError(c, err, "failed to list preferences")
		return
	}
	c.JSON(http.StatusOK, view.NewPreferenceViews(prefs))
}

// Get returns a single preference owned by the caller.
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	pref, err := h.prefs.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load preference")
		return
	}
	c.JSON(http.StatusOK, view.NewPreferenceView(*pref))
}

// Create stores a preference under one of the caller's profiles. A profile
// id belonging to someone else reads as not found.
func (h *PreferenceHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var form view.PreferenceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}
	form.ID = 0

	pref := form.ToEntity(userID, h.clock.Now())
	if err := h.prefs.Add(c.Request.Context(), &pref); err != nil {
		RepositoryError(c, err, "failed to create preference")
		return
	}
	c.JSON(http.StatusCreated, view.NewPreferenceView(pref))
}

// Update overwrites the editable fields of a preference.
func (h *PreferenceHandler) Update(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var form view.PreferenceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}
	form.ID = id

	pref := form.ToEntity(userID, h.clock.Now())
	if err := h.prefs.Update(c.Request.Context(), &pref); err != nil {
		RepositoryError(c, err, "failed to update preference")
		return
	}
	c.JSON(http.StatusOK, view.NewPreferenceView(pref))
}

// Delete removes a preference owned by the caller.
func (h *PreferenceHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	deleted, err := h.prefs.Delete(c.Request.Context(), id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to delete preference")
		return
	}
	if !deleted {
		NotFound(c, "preference not found")
		return
	}
	c.Status(http.StatusNoContent)
}
