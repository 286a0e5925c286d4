package api

import (
	"net/http"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             *logger.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or replacing an exercise.
type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup" binding:"required"` // e.g., "Peito", "Dorso"
	Difficulty  string `json:"difficulty"`
	Series      int    `json:"series" binding:"gte=0"`
	Repetitions int    `json:"repetitions" binding:"gte=0"`
	Description string `json:"description"`
}

func (r ExerciseRequest) toInput() service.ExerciseInput {
	return service.ExerciseInput{
		Name:        r.Name,
		MuscleGroup: r.MuscleGroup,
		Difficulty:  r.Difficulty,
		Series:      r.Series,
		Repetitions: r.Repetitions,
		Description: r.Description,
	}
}

// MediaUploadRequest names the MIME type the client will PUT.
type MediaUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Series      int       `json:"series"`
	Repetitions int       `json:"repetitions"`
	Description string    `json:"description,omitempty"`
	HasMedia    bool      `json:"hasMedia"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:          ex.ID.Hex(),
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
		Difficulty:  ex.Difficulty,
		Series:      ex.Series,
		Repetitions: ex.Repetitions,
		Description: ex.Description,
		HasMedia:    ex.MediaKey != "",
		CreatedAt:   ex.CreatedAt,
		UpdatedAt:   ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Adds an exercise to the shared catalog.
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if !bindJSON(c, &req) {
		return
	}
	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Exercises
// @Produce json
// @Param sort query string false "name, createdAt, -name or -createdAt"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 400 {object} gin.H "Unknown sort key"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), c.Query("sort"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// ReplaceExercise overwrites the catalog entry. Summaries already copied
// into workout plans keep their old values.
func (h *ExerciseHandler) ReplaceExercise(c *gin.Context) {
	var req ExerciseRequest
	if !bindJSON(c, &req) {
		return
	}
	exercise, err := h.exerciseService.ReplaceExercise(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestMediaUpload godoc
// @Summary Get a presigned URL to upload exercise media
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param body body MediaUploadRequest true "Media content type"
// @Success 200 {object} service.MediaURL
// @Failure 503 {object} gin.H "Media storage not configured"
// @Router /exercises/{id}/media [post]
func (h *ExerciseHandler) RequestMediaUpload(c *gin.Context) {
	var req MediaUploadRequest
	if !bindJSON(c, &req) {
		return
	}
	media, err := h.exerciseService.CreateMediaUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *ExerciseHandler) GetMediaURL(c *gin.Context) {
	media, err := h.exerciseService.GetMediaDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, media)
}
