package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type statsRepo struct{ s *Store }

func (r *statsRepo) CountExercisesByMuscleGroup(_ context.Context) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, ex := range r.s.exercises.docs {
		counts[ex.MuscleGroup]++
	}
	return counts, nil
}

func (r *statsRepo) AverageStudentWeight(_ context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var sum float64
	var n int
	for _, st := range r.s.students.docs {
		if st.Weight == nil {
			continue
		}
		sum += *st.Weight
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

func (r *statsRepo) CountWorkoutPlansByStudent(_ context.Context, studentID primitive.ObjectID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, plan := range r.s.workoutPlans.docs {
		if plan.StudentID == studentID {
			n++
		}
	}
	return n, nil
}
