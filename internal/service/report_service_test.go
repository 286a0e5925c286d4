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

// countingStudentRepo records lookups so tests can assert the store was not
// touched.
type countingStudentRepo struct {
	repository.StudentRepository
	lookups int
}

func (r *countingStudentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	r.lookups++
	return r.StudentRepository.GetByID(ctx, id)
}

type countingStatsRepo struct {
	repository.StatsRepository
	calls int
}

func (r *countingStatsRepo) CountWorkoutPlansByStudent(ctx context.Context, id primitive.ObjectID) (int64, error) {
	r.calls++
	return r.StatsRepository.CountWorkoutPlansByStudent(ctx, id)
}

func TestCountExercisesByMuscleGroup(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	counts, err := env.reports.CountExercisesByMuscleGroup(ctx)
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)

	env.mustExercise(t, "Supino", "Peito", 4, 10)
	env.mustExercise(t, "Crucifixo", "Peito", 3, 12)
	env.mustExercise(t, "Remada", "Dorso", 4, 10)

	counts, err = env.reports.CountExercisesByMuscleGroup(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Peito": 2, "Dorso": 1}, counts)
}

func TestAverageStudentWeight(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	avg, err := env.reports.AverageStudentWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	env.mustStudent(t, "A", ptr(70))
	env.mustStudent(t, "B", ptr(80))
	env.mustStudent(t, "C", nil)

	avg, err = env.reports.AverageStudentWeight(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, avg, 1e-9)
}

func TestSearchStudentsByName(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	for _, name := range []string{"João", "Joana", "Marjorie", "Pedro"} {
		env.mustStudent(t, name, nil)
	}

	found, err := env.reports.SearchStudentsByName(ctx, "jo")
	require.NoError(t, err)
	var names []string
	for _, st := range found {
		names = append(names, st.Name)
	}
	assert.ElementsMatch(t, []string{"João", "Joana", "Marjorie"}, names)

	all, err := env.reports.SearchStudentsByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Regex metacharacters are matched literally.
	none, err := env.reports.SearchStudentsByName(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountWorkoutPlansForStudent(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	students := &countingStudentRepo{StudentRepository: env.store.Students()}
	stats := &countingStatsRepo{StatsRepository: env.store.Stats()}
	reports := NewReportService(stats, students, env.store.WorkoutPlans())

	_, err := reports.CountWorkoutPlansForStudent(ctx, "123")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, students.lookups)
	assert.Zero(t, stats.calls)

	_, err = reports.CountWorkoutPlansForStudent(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Zero(t, stats.calls)

	joao := env.mustStudent(t, "João", nil)
	other := env.mustStudent(t, "Outro", nil)
	env.mustPlan(t, joao, "Segunda-feira")
	env.mustPlan(t, joao, "Quarta-feira")
	env.mustPlan(t, other, "Quarta-feira")

	count, err := reports.CountWorkoutPlansForStudent(ctx, joao.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, &domain.StudentPlanCount{StudentID: joao.ID, Name: "João", TotalWorkoutPlans: 2}, count)

	lonely := env.mustStudent(t, "Sem treino", nil)
	count, err = reports.CountWorkoutPlansForStudent(ctx, lonely.ID.Hex())
	require.NoError(t, err)
	assert.Zero(t, count.TotalWorkoutPlans)
}

func TestWorkoutPlansByWeekdayIsExact(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	student := env.mustStudent(t, "Ana", nil)
	env.mustPlan(t, student, "Segunda-feira")
	env.mustPlan(t, student, "segunda-feira")
	env.mustPlan(t, student, "Terça-feira")

	plans, err := env.reports.WorkoutPlansByWeekday(ctx, "Segunda-feira")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Segunda-feira", plans[0].Weekday)

	plans, err = env.reports.WorkoutPlansByWeekday(ctx, "Segunda")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestStudentBMI(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	st, err := env.students.CreateStudent(ctx, StudentInput{Name: "Ana", Weight: ptr(80), Height: ptr(2)})
	require.NoError(t, err)
	bmi, err := env.reports.StudentBMI(ctx, st.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, &domain.StudentBMI{Name: "Ana", BMI: 20}, bmi)

	st, err = env.students.CreateStudent(ctx, StudentInput{Name: "Bia", Weight: ptr(61.5), Height: ptr(1.68)})
	require.NoError(t, err)
	bmi, err = env.reports.StudentBMI(ctx, st.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 21.79, bmi.BMI)

	noHeight := env.mustStudent(t, "Caio", ptr(70))
	_, err = env.reports.StudentBMI(ctx, noHeight.ID.Hex())
	assert.ErrorIs(t, err, ErrMissingMeasurements)

	_, err = env.reports.StudentBMI(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestCountStudents(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	n, err := env.reports.CountStudents(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	env.mustStudent(t, "A", nil)
	env.mustStudent(t, "B", nil)
	n, err = env.reports.CountStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
