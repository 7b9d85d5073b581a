package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/view"
)

// ProfileHandler serves the one-per-user profile endpoints.
type ProfileHandler struct {
	profiles repository.MyProfileRepository
	prefs    repository.MyJobPreferenceRepository
	clock    model.Clock
}

// NewProfileHandler builds the handler.
func NewProfileHandler(profiles repository.MyProfileRepository, prefs repository.MyJobPreferenceRepository, clock model.Clock) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, prefs: prefs, clock: clock}
}

// Get returns the user's profile with its preference bundles.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profiles.GetByUser(ctx, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load profile")
		return
	}

	prefs, err := h.prefs.GetByProfile(ctx, profile.ID, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, view.NewProfileView(*profile, prefs))
}

// Create stores the user's profile. A second profile for the same user is
// rejected by the store's unique index and reads as a conflict.
func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var form view.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}
	form.ID = 0

	profile := form.ToEntity(userID, h.clock.Now())
	if err := h.profiles.Add(c.Request.Context(), &profile); err != nil {
		RepositoryError(c, err, "failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, view.NewProfileView(profile, nil))
}

// Update overwrites the editable fields of the user's profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var form view.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	existing, err := h.profiles.GetByUser(ctx, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load profile")
		return
	}

	form.ID = existing.ID
	profile := form.ToEntity(userID, h.clock.Now())
	if err := h.profiles.Update(ctx, &profile); err != nil {
		RepositoryError(c, err, "failed to update profile")
		return
	}

	prefs, err := h.prefs.GetByProfile(ctx, profile.ID, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load preferences")
		return
	}
	c.JSON(http.StatusOK, view.NewProfileView(profile, prefs))
}

// Delete removes the user's profile and cascades to its preferences.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profiles.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "profile not found")
			return
		}
		RepositoryError(c, err, "failed to load profile")
		return
	}

	deleted, err := h.profiles.Delete(ctx, profile.ID, userID)
	if err != nil {
		RepositoryError(c, err, "failed to delete profile")
		return
	}
	if !deleted {
		NotFound(c, "profile not found")
		return
	}
	c.Status(http.StatusNoContent)
}
