package service

import (
	"errors"

	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidID            = errors.New("invalid id")
	ErrValidationFailed     = errors.New("validation failed")
	ErrStudentNotFound      = errors.New("student not found")
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrWorkoutPlanNotFound  = errors.New("workout plan not found")
	ErrExerciseNotInPlan    = errors.New("exercise not found in workout plan")
	ErrNoWorkoutPlans       = errors.New("no workout plans found for this student")
	ErrMissingMeasurements  = errors.New("weight or height not recorded for this student")
	ErrNoMedia              = errors.New("exercise has no media")
	ErrMediaStorageDisabled = errors.New("media storage is not configured")
)

// parseID validates an identifier before any store access.
func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// notFoundAs replaces repository.ErrNotFound with an entity-specific error.
func notFoundAs(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
