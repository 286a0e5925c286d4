package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"
)

// WorkoutPlanInput describes a plan. ExerciseIDs are resolved against the
// catalog and snapshotted in the given order.
type WorkoutPlanInput struct {
	Name        string
	Weekday     string
	ExerciseIDs []string
}

func (in WorkoutPlanInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Weekday) == "" {
		return fmt.Errorf("%w: plan name and weekday are required", ErrValidationFailed)
	}
	return nil
}

// WorkoutPlanService keeps the exercise summaries embedded in plans
// consistent with the exercise catalog at the time they are written.
//
// Every mutation is read, validate, then write. Nothing is locked, so two
// concurrent writers to the same plan race and the later write wins.
type WorkoutPlanService interface {
	CreatePlan(ctx context.Context, studentID string, in WorkoutPlanInput) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, planID string) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, sortBy string) ([]domain.WorkoutPlan, error)
	ReplacePlan(ctx context.Context, planID, studentID string, in WorkoutPlanInput) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID string) error

	AttachExercise(ctx context.Context, planID, exerciseID string) (*domain.WorkoutPlan, error)
	DetachExercise(ctx context.Context, planID, exerciseID string) (*domain.WorkoutPlan, error)
	PlansWithExercisesForStudent(ctx context.Context, studentID string) (*domain.StudentWorkoutPlans, error)
}

// workoutPlanService implements the WorkoutPlanService interface.
type workoutPlanService struct {
	planRepo     repository.WorkoutPlanRepository
	studentRepo  repository.StudentRepository
	exerciseRepo repository.ExerciseRepository
}

// NewWorkoutPlanService creates a new instance of workoutPlanService.
func NewWorkoutPlanService(
	planRepo repository.WorkoutPlanRepository,
	studentRepo repository.StudentRepository,
	exerciseRepo repository.ExerciseRepository,
) WorkoutPlanService {
	return &workoutPlanService{
		planRepo:     planRepo,
		studentRepo:  studentRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *workoutPlanService) loadPlan(ctx context.Context, planID string) (*domain.WorkoutPlan, error) {
	id, err := parseID(planID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrWorkoutPlanNotFound)
	}
	return plan, nil
}

func (s *workoutPlanService) loadStudent(ctx context.Context, studentID string) (*domain.Student, error) {
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

func (s *workoutPlanService) loadExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	id, err := parseID(exerciseID)
	if err != nil {
		return nil, err
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}
	return exercise, nil
}

// snapshot resolves every exercise id before anything is written.
func (s *workoutPlanService) snapshot(ctx context.Context, exerciseIDs []string) ([]domain.ExerciseSummary, error) {
	summaries := make([]domain.ExerciseSummary, 0, len(exerciseIDs))
	for _, exerciseID := range exerciseIDs {
		exercise, err := s.loadExercise(ctx, exerciseID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, exercise.Summary())
	}
	return summaries, nil
}

func (s *workoutPlanService) CreatePlan(ctx context.Context, studentID string, in WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.snapshot(ctx, in.ExerciseIDs)
	if err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		Name:      in.Name,
		Weekday:   in.Weekday,
		StudentID: student.ID,
		Exercises: summaries,
	}
	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *workoutPlanService) GetPlan(ctx context.Context, planID string) (*domain.WorkoutPlan, error) {
	return s.loadPlan(ctx, planID)
}

func (s *workoutPlanService) ListPlans(ctx context.Context, sortBy string) ([]domain.WorkoutPlan, error) {
	return s.planRepo.List(ctx, repository.ListOptions{SortBy: sortBy})
}

// ReplacePlan overwrites the whole plan, re-snapshotting its exercises from
// the current catalog.
func (s *workoutPlanService) ReplacePlan(ctx context.Context, planID, studentID string, in WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.snapshot(ctx, in.ExerciseIDs)
	if err != nil {
		return nil, err
	}

	plan.Name = in.Name
	plan.Weekday = in.Weekday
	plan.StudentID = student.ID
	plan.Exercises = summaries
	return s.save(ctx, plan)
}

func (s *workoutPlanService) DeletePlan(ctx context.Context, planID string) error {
	id, err := parseID(planID)
	if err != nil {
		return err
	}
	return notFoundAs(s.planRepo.Delete(ctx, id), ErrWorkoutPlanNotFound)
}

// AttachExercise appends a snapshot of the exercise to the plan. Attaching
// the same exercise twice yields two summaries.
func (s *workoutPlanService) AttachExercise(ctx context.Context, planID, exerciseID string) (*domain.WorkoutPlan, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	exercise, err := s.loadExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	plan.Exercises = append(plan.Exercises, exercise.Summary())
	return s.save(ctx, plan)
}

// DetachExercise removes every summary of the exercise from the plan. Both
// ids are validated before the plan is read.
func (s *workoutPlanService) DetachExercise(ctx context.Context, planID, exerciseID string) (*domain.WorkoutPlan, error) {
	target, err := parseID(exerciseID)
	if err != nil {
		return nil, err
	}
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	kept := make([]domain.ExerciseSummary, 0, len(plan.Exercises))
	for _, summary := range plan.Exercises {
		if summary.ExerciseID != target {
			kept = append(kept, summary)
		}
	}
	if len(kept) == len(plan.Exercises) {
		return nil, ErrExerciseNotInPlan
	}

	plan.Exercises = kept
	return s.save(ctx, plan)
}

func (s *workoutPlanService) save(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	updated, err := s.planRepo.Replace(ctx, plan)
	if err != nil {
		// The plan vanished between read and write.
		return nil, notFoundAs(err, ErrWorkoutPlanNotFound)
	}
	return updated, nil
}

// PlansWithExercisesForStudent joins a student with their plans and each
// plan's current exercise documents. The store has no join, so this scans all
// plans and issues one lookup per embedded summary: O(plans x exercises).
// Summaries whose exercise was deleted are skipped.
func (s *workoutPlanService) PlansWithExercisesForStudent(ctx context.Context, studentID string) (*domain.StudentWorkoutPlans, error) {
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	plans, err := s.planRepo.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, err
	}

	result := &domain.StudentWorkoutPlans{
		StudentID:   student.ID,
		StudentName: student.Name,
		Plans:       []domain.WorkoutPlanExercises{},
	}
	for _, plan := range plans {
		if plan.StudentID != student.ID {
			continue
		}
		exercises, err := s.resolve(ctx, plan.Exercises)
		if err != nil {
			return nil, err
		}
		result.Plans = append(result.Plans, domain.WorkoutPlanExercises{
			ID:        plan.ID,
			Name:      plan.Name,
			Weekday:   plan.Weekday,
			Exercises: exercises,
		})
	}

	if len(result.Plans) == 0 {
		return nil, ErrNoWorkoutPlans
	}
	return result, nil
}

func (s *workoutPlanService) resolve(ctx context.Context, summaries []domain.ExerciseSummary) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0, len(summaries))
	for _, summary := range summaries {
		exercise, err := s.exerciseRepo.GetByID(ctx, summary.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		exercises = append(exercises, *exercise)
	}
	return exercises, nil
}
