package repository

import (
	"context"
	"strings"

	"github.com/Yaghost/FitGoal/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrInvalidSortKey = RepositoryError("invalid sort key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ListOptions controls List calls. SortBy is a field name ("name",
// "createdAt"), optionally prefixed with "-" for descending order. Empty means
// store order.
type ListOptions struct {
	SortBy string
}

var sortableFields = map[string]bool{
	"name":      true,
	"createdAt": true,
}

// ParseSort splits a sort key into its field and direction.
func ParseSort(key string) (field string, desc bool, err error) {
	if key == "" {
		return "", false, nil
	}
	field = key
	if strings.HasPrefix(key, "-") {
		field, desc = key[1:], true
	}
	if !sortableFields[field] {
		return "", false, ErrInvalidSortKey
	}
	return field, desc, nil
}

// StudentRepository defines the interface for interacting with student data.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Student, error)
	// SearchByName is a case-insensitive substring match on name.
	SearchByName(ctx context.Context, fragment string) ([]domain.Student, error)
	Count(ctx context.Context) (int64, error)
	// Replace overwrites every mutable field, including nil ones.
	Replace(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Exercise, error)
	Replace(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	SetMediaKey(ctx context.Context, id primitive.ObjectID, key string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutPlanRepository defines the interface for interacting with workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	List(ctx context.Context, opts ListOptions) ([]domain.WorkoutPlan, error)
	// ListByWeekday is an exact, case-sensitive match on the weekday label.
	ListByWeekday(ctx context.Context, weekday string) ([]domain.WorkoutPlan, error)
	Replace(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// StatsRepository runs the cross-document aggregations. Implementations
// return zero values, never errors, for empty collections.
type StatsRepository interface {
	CountExercisesByMuscleGroup(ctx context.Context) (map[string]int64, error)
	// AverageStudentWeight skips students without a weight; 0 when none have one.
	AverageStudentWeight(ctx context.Context) (float64, error)
	CountWorkoutPlansByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error)
}
