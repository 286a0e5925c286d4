package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Yaghost/FitGoal/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileStorage struct {
	deleted   []string
	deleteErr error
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	return "https://media.test/" + key + "?put&type=" + contentType, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://media.test/" + key + "?get", nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

func TestExerciseValidation(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	_, err := env.exercises.CreateExercise(ctx, ExerciseInput{Name: "  ", MuscleGroup: "Peito"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = env.exercises.CreateExercise(ctx, ExerciseInput{Name: "Supino", Series: -1})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = env.exercises.GetExercise(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestExerciseMediaDisabled(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	ex := env.mustExercise(t, "Supino", "Peito", 4, 10)

	_, err := env.exercises.CreateMediaUploadURL(ctx, ex.ID.Hex(), "video/mp4")
	assert.ErrorIs(t, err, ErrMediaStorageDisabled)
	_, err = env.exercises.GetMediaDownloadURL(ctx, ex.ID.Hex())
	assert.ErrorIs(t, err, ErrMediaStorageDisabled)
}

func TestExerciseMediaLifecycle(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	files := &fakeFileStorage{}
	exercises := NewExerciseService(env.store.Exercises(), files, logger.NewNop())
	ex := env.mustExercise(t, "Supino", "Peito", 4, 10)

	_, err := exercises.GetMediaDownloadURL(ctx, ex.ID.Hex())
	assert.ErrorIs(t, err, ErrNoMedia)

	_, err = exercises.CreateMediaUploadURL(ctx, ex.ID.Hex(), "application/pdf")
	assert.ErrorIs(t, err, ErrValidationFailed)

	upload, err := exercises.CreateMediaUploadURL(ctx, ex.ID.Hex(), "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "PUT", upload.Method)
	assert.True(t, strings.HasPrefix(upload.MediaKey, "exercises/"+ex.ID.Hex()+"/"))

	stored, err := exercises.GetExercise(ctx, ex.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, upload.MediaKey, stored.MediaKey)

	download, err := exercises.GetMediaDownloadURL(ctx, ex.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "GET", download.Method)
	assert.Contains(t, download.URL, upload.MediaKey)

	// Replacing catalog fields keeps the media key.
	_, err = exercises.ReplaceExercise(ctx, ex.ID.Hex(), ExerciseInput{Name: "Supino reto", MuscleGroup: "Peito"})
	require.NoError(t, err)
	stored, err = exercises.GetExercise(ctx, ex.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, upload.MediaKey, stored.MediaKey)

	// A storage failure does not fail the delete.
	files.deleteErr = errors.New("bucket unavailable")
	require.NoError(t, exercises.DeleteExercise(ctx, ex.ID.Hex()))
	assert.Equal(t, []string{upload.MediaKey}, files.deleted)

	_, err = exercises.GetExercise(ctx, ex.ID.Hex())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
