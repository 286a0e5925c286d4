package service

import (
	"context"
	"math"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"
)

// ReportService holds the read-only aggregate queries. Empty collections
// produce empty results or zero values, never errors.
type ReportService interface {
	CountExercisesByMuscleGroup(ctx context.Context) (map[string]int64, error)
	AverageStudentWeight(ctx context.Context) (float64, error)
	CountWorkoutPlansForStudent(ctx context.Context, studentID string) (*domain.StudentPlanCount, error)
	WorkoutPlansByWeekday(ctx context.Context, weekday string) ([]domain.WorkoutPlan, error)
	SearchStudentsByName(ctx context.Context, fragment string) ([]domain.Student, error)
	CountStudents(ctx context.Context) (int64, error)
	StudentBMI(ctx context.Context, studentID string) (*domain.StudentBMI, error)
}

// reportService implements the ReportService interface.
type reportService struct {
	statsRepo   repository.StatsRepository
	studentRepo repository.StudentRepository
	planRepo    repository.WorkoutPlanRepository
}

// NewReportService creates a new instance of reportService.
func NewReportService(
	statsRepo repository.StatsRepository,
	studentRepo repository.StudentRepository,
	planRepo repository.WorkoutPlanRepository,
) ReportService {
	return &reportService{
		statsRepo:   statsRepo,
		studentRepo: studentRepo,
		planRepo:    planRepo,
	}
}

func (s *reportService) CountExercisesByMuscleGroup(ctx context.Context) (map[string]int64, error) {
	counts, err := s.statsRepo.CountExercisesByMuscleGroup(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = map[string]int64{}
	}
	return counts, nil
}

func (s *reportService) AverageStudentWeight(ctx context.Context) (float64, error) {
	return s.statsRepo.AverageStudentWeight(ctx)
}

// CountWorkoutPlansForStudent rejects a malformed id before touching the store.
func (s *reportService) CountWorkoutPlansForStudent(ctx context.Context, studentID string) (*domain.StudentPlanCount, error) {
	id, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrStudentNotFound)
	}
	total, err := s.statsRepo.CountWorkoutPlansByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.StudentPlanCount{
		StudentID:         student.ID,
		Name:              student.Name,
		TotalWorkoutPlans: total,
	}, nil
}

func (s *reportService) WorkoutPlansByWeekday(ctx context.Context, weekday string) ([]domain.WorkoutPlan, error) {
	return s.planRepo.ListByWeekday(ctx, weekday)
}

// SearchStudentsByName matches fragment case-insensitively anywhere in the
// name. An empty fragment matches every student.
func (s *reportService) SearchStudentsByName(ctx context.Context, fragment string) ([]domain.Student, error) {
	return s.studentRepo.SearchByName(ctx, fragment)
}

func (s *reportService) CountStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}

// StudentBMI computes weight / height², rounded to two decimals.
func (s *reportService) StudentBMI(ctx context.Context, studentID string) (*domain.StudentBMI, error) {
	id, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrStudentNotFound)
	}
	if student.Weight == nil || student.Height == nil || *student.Height == 0 {
		return nil, ErrMissingMeasurements
	}

	bmi := *student.Weight / (*student.Height * *student.Height)
	return &domain.StudentBMI{
		Name: student.Name,
		BMI:  math.Round(bmi*100) / 100,
	}, nil
}
