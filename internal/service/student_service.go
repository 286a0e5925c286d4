package service

import (
	"context"
	"fmt"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"
)

// StudentInput carries every writable student field. Replace writes all of
// them, so a nil Weight clears a stored weight.
type StudentInput struct {
	Name   string
	Email  string
	Phone  string
	Weight *float64
	Height *float64
}

func (in StudentInput) validate() error {
	if in.Weight != nil && *in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidationFailed)
	}
	if in.Height != nil && *in.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrValidationFailed)
	}
	return nil
}

type StudentService interface {
	CreateStudent(ctx context.Context, in StudentInput) (*domain.Student, error)
	GetStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, sortBy string) ([]domain.Student, error)
	ReplaceStudent(ctx context.Context, studentID string, in StudentInput) (*domain.Student, error)
	// DeleteStudent does not touch the student's workout plans.
	DeleteStudent(ctx context.Context, studentID string) error
}

// studentService implements the StudentService interface.
type studentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new instance of studentService.
func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, in StudentInput) (*domain.Student, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	student := &domain.Student{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Weight: in.Weight,
		Height: in.Height,
	}
	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	id, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrStudentNotFound)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context, sortBy string) ([]domain.Student, error) {
	return s.studentRepo.List(ctx, repository.ListOptions{SortBy: sortBy})
}

func (s *studentService) ReplaceStudent(ctx context.Context, studentID string, in StudentInput) (*domain.Student, error) {
	id, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	updated, err := s.studentRepo.Replace(ctx, &domain.Student{
		ID:     id,
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Weight: in.Weight,
		Height: in.Height,
	})
	if err != nil {
		return nil, notFoundAs(err, ErrStudentNotFound)
	}
	return updated, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, studentID string) error {
	id, err := parseID(studentID)
	if err != nil {
		return err
	}
	return notFoundAs(s.studentRepo.Delete(ctx, id), ErrStudentNotFound)
}
