package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func Unauthorized(c *gin.Context)           { Error(c, http.StatusUnauthorized, "unauthorized") }
func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func Forbidden(c *gin.Context, msg string)  { Error(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)   { Error(c, http.StatusConflict, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }

func Unprocessable(c *gin.Context, msg string) {
	Error(c, http.StatusUnprocessableEntity, msg)
}

// RepositoryError maps the repository/domain error taxonomy onto HTTP
// status codes. fallback describes the operation for the 500 case.
func RepositoryError(c *gin.Context, err error, fallback string) {
	var verr *model.ValidationError
	var terr *model.InvalidTransitionError
	switch {
	case errors.As(err, &verr):
		Unprocessable(c, verr.Error())
	case errors.As(err, &terr):
		Conflict(c, terr.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "not found")
	case errors.Is(err, repository.ErrConflict):
		Conflict(c, "already exists")
	default:
		Internal(c, fallback)
	}
}
