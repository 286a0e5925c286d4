package api

import (
	"errors"
	"net/http"

	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/repository"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps service and repository errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, repository.ErrInvalidSortKey):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrWorkoutPlanNotFound),
		errors.Is(err, service.ErrExerciseNotInPlan),
		errors.Is(err, service.ErrNoWorkoutPlans),
		errors.Is(err, service.ErrNoMedia),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMissingMeasurements):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrMediaStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Unexpected errors are logged
// and hidden from the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.With("request_id", c.GetString(ContextRequestIDKey)).Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		abortWithError(c, status, "Internal server error.")
		return
	}
	abortWithError(c, status, err.Error())
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}
