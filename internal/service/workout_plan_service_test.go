package service

import (
	"context"
	"testing"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAttachExerciseSnapshotsCurrentValues(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "João", nil)
	bench := env.mustExercise(t, "Supino reto", "Peito", 4, 10)
	plan := env.mustPlan(t, student, "Segunda-feira")

	updated, err := env.plans.AttachExercise(ctx, plan.ID.Hex(), bench.ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.Exercises, len(plan.Exercises)+1)
	assert.Equal(t, domain.ExerciseSummary{
		ExerciseID:  bench.ID,
		Name:        "Supino reto",
		Series:      4,
		Repetitions: 10,
	}, updated.Exercises[0])

	// Editing the exercise afterwards must not reach the embedded copy.
	_, err = env.exercises.ReplaceExercise(ctx, bench.ID.Hex(), ExerciseInput{
		Name: "Supino inclinado", MuscleGroup: "Peito", Series: 5, Repetitions: 8,
	})
	require.NoError(t, err)

	stored, err := env.plans.GetPlan(ctx, plan.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Exercises, 1)
	assert.Equal(t, "Supino reto", stored.Exercises[0].Name)
	assert.Equal(t, 4, stored.Exercises[0].Series)
	assert.Equal(t, 10, stored.Exercises[0].Repetitions)
}

func TestAttachExerciseTwiceKeepsBoth(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Ana", nil)
	squat := env.mustExercise(t, "Agachamento", "Pernas", 3, 12)
	plan := env.mustPlan(t, student, "Terça-feira", squat)

	updated, err := env.plans.AttachExercise(ctx, plan.ID.Hex(), squat.ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.Exercises, 2)
	assert.Equal(t, squat.ID, updated.Exercises[0].ExerciseID)
	assert.Equal(t, squat.ID, updated.Exercises[1].ExerciseID)
}

func TestAttachExerciseMissingEntities(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Ana", nil)
	squat := env.mustExercise(t, "Agachamento", "Pernas", 3, 12)
	plan := env.mustPlan(t, student, "Terça-feira")
	missing := primitive.NewObjectID().Hex()

	_, err := env.plans.AttachExercise(ctx, missing, squat.ID.Hex())
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)

	_, err = env.plans.AttachExercise(ctx, plan.ID.Hex(), missing)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = env.plans.AttachExercise(ctx, plan.ID.Hex(), "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	stored, err := env.plans.GetPlan(ctx, plan.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, stored.Exercises)
}

func TestDetachExerciseRemovesAllDuplicates(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Pedro", nil)
	a := env.mustExercise(t, "Remada", "Dorso", 4, 10)
	b := env.mustExercise(t, "Rosca", "Bíceps", 3, 12)
	plan := env.mustPlan(t, student, "Quarta-feira", a, b, a)

	updated, err := env.plans.DetachExercise(ctx, plan.ID.Hex(), a.ID.Hex())
	require.NoError(t, err)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, b.ID, updated.Exercises[0].ExerciseID)

	stored, err := env.plans.GetPlan(ctx, plan.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, updated.Exercises, stored.Exercises)
}

func TestDetachExerciseNotInPlan(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Pedro", nil)
	a := env.mustExercise(t, "Remada", "Dorso", 4, 10)
	b := env.mustExercise(t, "Rosca", "Bíceps", 3, 12)
	plan := env.mustPlan(t, student, "Quarta-feira", a)

	_, err := env.plans.DetachExercise(ctx, plan.ID.Hex(), b.ID.Hex())
	assert.ErrorIs(t, err, ErrExerciseNotInPlan)

	_, err = env.plans.DetachExercise(ctx, primitive.NewObjectID().Hex(), a.ID.Hex())
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)

	stored, err := env.plans.GetPlan(ctx, plan.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Exercises, 1)
}

type countingPlanRepo struct {
	repository.WorkoutPlanRepository
	lookups int
}

func (r *countingPlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	r.lookups++
	return r.WorkoutPlanRepository.GetByID(ctx, id)
}

func TestDetachExerciseRejectsMalformedIDBeforeLookup(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	plans := &countingPlanRepo{WorkoutPlanRepository: env.store.WorkoutPlans()}
	svc := NewWorkoutPlanService(plans, env.store.Students(), env.store.Exercises())

	_, err := svc.DetachExercise(ctx, primitive.NewObjectID().Hex(), "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, plans.lookups)

	student := env.mustStudent(t, "Ana", nil)
	plan := env.mustPlan(t, student, "Sexta-feira", env.mustExercise(t, "Prancha", "Core", 3, 30))
	_, err = svc.DetachExercise(ctx, plan.ID.Hex(), "zz")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, plans.lookups)

	_, err = svc.DetachExercise(ctx, "zz", plan.Exercises[0].ExerciseID.Hex())
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, plans.lookups)
}

func TestPlansWithExercisesForStudent(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	joao := env.mustStudent(t, "João", nil)
	maria := env.mustStudent(t, "Maria", nil)
	bench := env.mustExercise(t, "Supino", "Peito", 4, 10)
	row := env.mustExercise(t, "Remada", "Dorso", 4, 10)
	curl := env.mustExercise(t, "Rosca", "Bíceps", 3, 12)

	env.mustPlan(t, joao, "Segunda-feira", bench, row)
	env.mustPlan(t, maria, "Segunda-feira", curl)
	env.mustPlan(t, joao, "Quinta-feira", curl)

	// The join resolves current documents, unlike the embedded summaries.
	_, err := env.exercises.ReplaceExercise(ctx, bench.ID.Hex(), ExerciseInput{Name: "Supino reto", MuscleGroup: "Peito", Series: 5, Repetitions: 5})
	require.NoError(t, err)
	// Deleted exercises are dropped from the join.
	require.NoError(t, env.exercises.DeleteExercise(ctx, row.ID.Hex()))

	result, err := env.plans.PlansWithExercisesForStudent(ctx, joao.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, joao.ID, result.StudentID)
	assert.Equal(t, "João", result.StudentName)
	require.Len(t, result.Plans, 2)

	assert.Equal(t, "Segunda-feira", result.Plans[0].Weekday)
	require.Len(t, result.Plans[0].Exercises, 1)
	assert.Equal(t, "Supino reto", result.Plans[0].Exercises[0].Name)
	assert.Equal(t, 5, result.Plans[0].Exercises[0].Series)

	assert.Equal(t, "Quinta-feira", result.Plans[1].Weekday)
	require.Len(t, result.Plans[1].Exercises, 1)
	assert.Equal(t, curl.ID, result.Plans[1].Exercises[0].ID)
}

func TestPlansWithExercisesForStudentEmpty(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Sem Treino", nil)

	_, err := env.plans.PlansWithExercisesForStudent(ctx, student.ID.Hex())
	assert.ErrorIs(t, err, ErrNoWorkoutPlans)

	_, err = env.plans.PlansWithExercisesForStudent(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestCreatePlanValidatesReferences(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Ana", nil)

	_, err := env.plans.CreatePlan(ctx, primitive.NewObjectID().Hex(), WorkoutPlanInput{Name: "A", Weekday: "Sexta-feira"})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = env.plans.CreatePlan(ctx, student.ID.Hex(), WorkoutPlanInput{
		Name: "A", Weekday: "Sexta-feira", ExerciseIDs: []string{primitive.NewObjectID().Hex()},
	})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = env.plans.CreatePlan(ctx, student.ID.Hex(), WorkoutPlanInput{Weekday: "Sexta-feira"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	plans, err := env.plans.ListPlans(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestReplacePlanResnapshotsExercises(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	ana := env.mustStudent(t, "Ana", nil)
	bia := env.mustStudent(t, "Bia", nil)
	squat := env.mustExercise(t, "Agachamento", "Pernas", 3, 12)
	plan := env.mustPlan(t, ana, "Sábado", squat)

	_, err := env.exercises.ReplaceExercise(ctx, squat.ID.Hex(), ExerciseInput{Name: "Agachamento livre", MuscleGroup: "Pernas", Series: 5, Repetitions: 5})
	require.NoError(t, err)

	updated, err := env.plans.ReplacePlan(ctx, plan.ID.Hex(), bia.ID.Hex(), WorkoutPlanInput{
		Name: "Pernas", Weekday: "Domingo", ExerciseIDs: []string{squat.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, bia.ID, updated.StudentID)
	assert.Equal(t, "Domingo", updated.Weekday)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, "Agachamento livre", updated.Exercises[0].Name)
}

func TestDeleteStudentLeavesPlansOrphaned(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Ana", nil)
	plan := env.mustPlan(t, student, "Sábado")

	require.NoError(t, env.students.DeleteStudent(ctx, student.ID.Hex()))

	stored, err := env.plans.GetPlan(ctx, plan.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, student.ID, stored.StudentID)

	_, err = env.plans.PlansWithExercisesForStudent(ctx, student.ID.Hex())
	assert.ErrorIs(t, err, ErrStudentNotFound)

	require.NoError(t, env.plans.DeletePlan(ctx, plan.ID.Hex()))
	assert.ErrorIs(t, env.plans.DeletePlan(ctx, plan.ID.Hex()), ErrWorkoutPlanNotFound)
}
