package memory

import (
	"context"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type studentRepo struct{ s *Store }

func copyStudent(st domain.Student) domain.Student {
	if st.Weight != nil {
		w := *st.Weight
		st.Weight = &w
	}
	if st.Height != nil {
		h := *st.Height
		st.Height = &h
	}
	return st
}

func (r *studentRepo) Create(_ context.Context, student *domain.Student) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	student.ID = primitive.NewObjectID()
	student.CreatedAt = now()
	student.UpdatedAt = student.CreatedAt
	r.s.students.insert(student.ID, copyStudent(*student))
	return student.ID, nil
}

func (r *studentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.students.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := copyStudent(st)
	return &cp, nil
}

func (r *studentRepo) List(_ context.Context, opts repository.ListOptions) ([]domain.Student, error) {
	r.s.mu.RLock()
	docs := r.s.students.all()
	r.s.mu.RUnlock()

	for i := range docs {
		docs[i] = copyStudent(docs[i])
	}
	err := sortDocs(docs, opts,
		func(s domain.Student) string { return s.Name },
		func(s domain.Student) time.Time { return s.CreatedAt })
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *studentRepo) SearchByName(_ context.Context, fragment string) ([]domain.Student, error) {
	re := containsFold(fragment)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Student{}
	for _, st := range r.s.students.all() {
		if re.MatchString(st.Name) {
			out = append(out, copyStudent(st))
		}
	}
	return out, nil
}

func (r *studentRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.students.docs)), nil
}

func (r *studentRepo) Replace(_ context.Context, student *domain.Student) (*domain.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.students.get(student.ID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Name = student.Name
	stored.Email = student.Email
	stored.Phone = student.Phone
	stored.Weight = student.Weight
	stored.Height = student.Height
	stored.UpdatedAt = now()
	stored = copyStudent(stored)
	r.s.students.put(stored.ID, stored)

	cp := copyStudent(stored)
	return &cp, nil
}

func (r *studentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.students.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
