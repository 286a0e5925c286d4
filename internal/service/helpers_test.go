package service

import (
	"context"
	"testing"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store     *memory.Store
	students  StudentService
	exercises ExerciseService
	plans     WorkoutPlanService
	reports   ReportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	return &testEnv{
		store:     store,
		students:  NewStudentService(store.Students()),
		exercises: NewExerciseService(store.Exercises(), nil, logger.NewNop()),
		plans:     NewWorkoutPlanService(store.WorkoutPlans(), store.Students(), store.Exercises()),
		reports:   NewReportService(store.Stats(), store.Students(), store.WorkoutPlans()),
	}
}

func (e *testEnv) mustStudent(t *testing.T, name string, weight *float64) *domain.Student {
	t.Helper()
	st, err := e.students.CreateStudent(context.Background(), StudentInput{Name: name, Weight: weight})
	require.NoError(t, err)
	return st
}

func (e *testEnv) mustExercise(t *testing.T, name, group string, series, reps int) *domain.Exercise {
	t.Helper()
	ex, err := e.exercises.CreateExercise(context.Background(), ExerciseInput{
		Name:        name,
		MuscleGroup: group,
		Difficulty:  "Intermediário",
		Series:      series,
		Repetitions: reps,
	})
	require.NoError(t, err)
	return ex
}

func (e *testEnv) mustPlan(t *testing.T, student *domain.Student, weekday string, exercises ...*domain.Exercise) *domain.WorkoutPlan {
	t.Helper()
	ids := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		ids = append(ids, ex.ID.Hex())
	}
	plan, err := e.plans.CreatePlan(context.Background(), student.ID.Hex(), WorkoutPlanInput{
		Name:        "Treino " + weekday,
		Weekday:     weekday,
		ExerciseIDs: ids,
	})
	require.NoError(t, err)
	return plan
}

func ptr(f float64) *float64 { return &f }
