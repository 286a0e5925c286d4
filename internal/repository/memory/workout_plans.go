package memory

import (
	"context"
	"errors"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type workoutPlanRepo struct{ s *Store }

func (r *workoutPlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.StudentID == primitive.NilObjectID || plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan requires studentId and name")
	}
	if plan.Exercises == nil {
		plan.Exercises = []domain.ExerciseSummary{}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = now()
	plan.UpdatedAt = plan.CreatedAt
	r.s.workoutPlans.insert(plan.ID, *plan.Clone())
	return plan.ID, nil
}

func (r *workoutPlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	plan, ok := r.s.workoutPlans.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return plan.Clone(), nil
}

func (r *workoutPlanRepo) List(_ context.Context, opts repository.ListOptions) ([]domain.WorkoutPlan, error) {
	r.s.mu.RLock()
	docs := r.s.workoutPlans.all()
	r.s.mu.RUnlock()

	for i := range docs {
		docs[i] = *docs[i].Clone()
	}
	err := sortDocs(docs, opts,
		func(p domain.WorkoutPlan) string { return p.Name },
		func(p domain.WorkoutPlan) time.Time { return p.CreatedAt })
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *workoutPlanRepo) ListByWeekday(_ context.Context, weekday string) ([]domain.WorkoutPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.WorkoutPlan{}
	for _, plan := range r.s.workoutPlans.all() {
		if plan.Weekday == weekday {
			out = append(out, *plan.Clone())
		}
	}
	return out, nil
}

func (r *workoutPlanRepo) Replace(_ context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.workoutPlans.get(plan.ID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	incoming := plan.Clone()
	stored.Name = incoming.Name
	stored.Weekday = incoming.Weekday
	stored.StudentID = incoming.StudentID
	stored.Exercises = incoming.Exercises
	if stored.Exercises == nil {
		stored.Exercises = []domain.ExerciseSummary{}
	}
	stored.UpdatedAt = now()
	r.s.workoutPlans.put(stored.ID, stored)
	return stored.Clone(), nil
}

func (r *workoutPlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.workoutPlans.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
