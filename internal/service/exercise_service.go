package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/repository"
	"github.com/Yaghost/FitGoal/internal/storage"

	"github.com/google/uuid"
)

// ExerciseInput carries every writable catalog field of an exercise.
type ExerciseInput struct {
	Name        string
	MuscleGroup string
	Difficulty  string
	Series      int
	Repetitions int
	Description string
}

func (in ExerciseInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	if in.Series < 0 || in.Repetitions < 0 {
		return fmt.Errorf("%w: series and repetitions cannot be negative", ErrValidationFailed)
	}
	return nil
}

// MediaURL is a presigned URL together with the object key it addresses.
type MediaURL struct {
	URL      string `json:"url"`
	MediaKey string `json:"mediaKey"`
	Method   string `json:"method"`
}

type ExerciseService interface {
	CreateExercise(ctx context.Context, in ExerciseInput) (*domain.Exercise, error)
	GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	ListExercises(ctx context.Context, sortBy string) ([]domain.Exercise, error)
	// ReplaceExercise does not refresh summaries already embedded in plans.
	ReplaceExercise(ctx context.Context, exerciseID string, in ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error
	CreateMediaUploadURL(ctx context.Context, exerciseID, contentType string) (*MediaURL, error)
	GetMediaDownloadURL(ctx context.Context, exerciseID string) (*MediaURL, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage // nil when media storage is disabled
	log          *logger.Logger
}

// NewExerciseService creates a new instance of exerciseService. fileStorage
// may be nil.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage, log *logger.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
		log:          log,
	}
}

func (s *exerciseService) CreateExercise(ctx context.Context, in ExerciseInput) (*domain.Exercise, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	exercise := &domain.Exercise{
		Name:        in.Name,
		MuscleGroup: in.MuscleGroup,
		Difficulty:  in.Difficulty,
		Series:      in.Series,
		Repetitions: in.Repetitions,
		Description: in.Description,
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
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

func (s *exerciseService) ListExercises(ctx context.Context, sortBy string) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, repository.ListOptions{SortBy: sortBy})
}

func (s *exerciseService) ReplaceExercise(ctx context.Context, exerciseID string, in ExerciseInput) (*domain.Exercise, error) {
	id, err := parseID(exerciseID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	updated, err := s.exerciseRepo.Replace(ctx, &domain.Exercise{
		ID:          id,
		Name:        in.Name,
		MuscleGroup: in.MuscleGroup,
		Difficulty:  in.Difficulty,
		Series:      in.Series,
		Repetitions: in.Repetitions,
		Description: in.Description,
	})
	if err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}
	return updated, nil
}

// DeleteExercise removes the exercise and, best-effort, its media object.
func (s *exerciseService) DeleteExercise(ctx context.Context, exerciseID string) error {
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, exercise.ID); err != nil {
		return notFoundAs(err, ErrExerciseNotFound)
	}
	if exercise.MediaKey != "" && s.fileStorage != nil {
		if err := s.fileStorage.DeleteObject(ctx, exercise.MediaKey); err != nil {
			s.log.Warn("failed to delete exercise media", "exercise_id", exercise.ID.Hex(), "key", exercise.MediaKey, "error", err)
		}
	}
	return nil
}

// CreateMediaUploadURL assigns a fresh media key to the exercise and returns
// a presigned PUT URL for it.
func (s *exerciseService) CreateMediaUploadURL(ctx context.Context, exerciseID, contentType string) (*MediaURL, error) {
	if s.fileStorage == nil {
		return nil, ErrMediaStorageDisabled
	}
	if !strings.HasPrefix(contentType, "video/") && !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type must be image/* or video/*", ErrValidationFailed)
	}
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exercises/%s/%s", exercise.ID.Hex(), uuid.NewString())
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.SetMediaKey(ctx, exercise.ID, key); err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}
	return &MediaURL{URL: url, MediaKey: key, Method: "PUT"}, nil
}

func (s *exerciseService) GetMediaDownloadURL(ctx context.Context, exerciseID string) (*MediaURL, error) {
	if s.fileStorage == nil {
		return nil, ErrMediaStorageDisabled
	}
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.MediaKey == "" {
		return nil, ErrNoMedia
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.MediaKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &MediaURL{URL: url, MediaKey: exercise.MediaKey, Method: "GET"}, nil
}
