package memory

import (
	"context"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type exerciseRepo struct{ s *Store }

func (r *exerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = now()
	exercise.UpdatedAt = exercise.CreatedAt
	r.s.exercises.insert(exercise.ID, *exercise)
	return exercise.ID, nil
}

func (r *exerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ex, ok := r.s.exercises.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *exerciseRepo) List(_ context.Context, opts repository.ListOptions) ([]domain.Exercise, error) {
	r.s.mu.RLock()
	docs := r.s.exercises.all()
	r.s.mu.RUnlock()

	err := sortDocs(docs, opts,
		func(e domain.Exercise) string { return e.Name },
		func(e domain.Exercise) time.Time { return e.CreatedAt })
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *exerciseRepo) Replace(_ context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.exercises.get(exercise.ID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Name = exercise.Name
	stored.MuscleGroup = exercise.MuscleGroup
	stored.Difficulty = exercise.Difficulty
	stored.Series = exercise.Series
	stored.Repetitions = exercise.Repetitions
	stored.Description = exercise.Description
	stored.UpdatedAt = now()
	r.s.exercises.put(stored.ID, stored)
	return &stored, nil
}

func (r *exerciseRepo) SetMediaKey(_ context.Context, id primitive.ObjectID, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.exercises.get(id)
	if !ok {
		return repository.ErrNotFound
	}
	stored.MediaKey = key
	stored.UpdatedAt = now()
	r.s.exercises.put(id, stored)
	return nil
}

func (r *exerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.exercises.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
