package api

import (
	"net/http"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutPlanHandler serves plan CRUD, exercise attach/detach and the
// student join.
type WorkoutPlanHandler struct {
	planService   service.WorkoutPlanService
	reportService service.ReportService
	log           *logger.Logger
}

// NewWorkoutPlanHandler creates a new WorkoutPlanHandler.
func NewWorkoutPlanHandler(planService service.WorkoutPlanService, reportService service.ReportService, log *logger.Logger) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService, reportService: reportService, log: log}
}

// --- DTOs ---

// CreateWorkoutPlanRequest is the body of POST /students/:id/workout-plans.
type CreateWorkoutPlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Weekday     string   `json:"weekday" binding:"required"` // e.g., "Segunda-feira"
	ExerciseIDs []string `json:"exerciseIds"`
}

func (r CreateWorkoutPlanRequest) toInput() service.WorkoutPlanInput {
	return service.WorkoutPlanInput{
		Name:        r.Name,
		Weekday:     r.Weekday,
		ExerciseIDs: r.ExerciseIDs,
	}
}

// ReplaceWorkoutPlanRequest also carries the owning student, which may change.
type ReplaceWorkoutPlanRequest struct {
	CreateWorkoutPlanRequest
	StudentID string `json:"studentId" binding:"required"`
}

type AttachExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
}

func plansOrEmpty(plans []domain.WorkoutPlan) []domain.WorkoutPlan {
	if plans == nil {
		return []domain.WorkoutPlan{}
	}
	return plans
}

// --- Handler Methods ---

// CreateWorkoutPlan godoc
// @Summary Create a workout plan for a student
// @Description Exercise summaries are copied from the catalog in the given order.
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param plan body CreateWorkoutPlanRequest true "Plan details"
// @Success 201 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Student or exercise not found"
// @Router /students/{id}/workout-plans [post]
func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.planService.CreatePlan(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetStudentWorkoutPlans godoc
// @Summary A student's plans with their current exercise documents
// @Tags WorkoutPlans
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} domain.StudentWorkoutPlans
// @Failure 404 {object} gin.H "Student not found or has no plans"
// @Router /students/{id}/workout-plans [get]
func (h *WorkoutPlanHandler) GetStudentWorkoutPlans(c *gin.Context) {
	result, err := h.planService.PlansWithExercisesForStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListWorkoutPlans lists every plan, or only those whose weekday label
// matches ?weekday= exactly.
func (h *WorkoutPlanHandler) ListWorkoutPlans(c *gin.Context) {
	var (
		plans []domain.WorkoutPlan
		err   error
	)
	if weekday, ok := c.GetQuery("weekday"); ok {
		plans, err = h.reportService.WorkoutPlansByWeekday(c.Request.Context(), weekday)
	} else {
		plans, err = h.planService.ListPlans(c.Request.Context(), c.Query("sort"))
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plansOrEmpty(plans))
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) ReplaceWorkoutPlan(c *gin.Context) {
	var req ReplaceWorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.planService.ReplacePlan(c.Request.Context(), c.Param("id"), req.StudentID, req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	if err := h.planService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachExercise appends a summary of the exercise to the plan. Duplicates
// are allowed.
func (h *WorkoutPlanHandler) AttachExercise(c *gin.Context) {
	var req AttachExerciseRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.planService.AttachExercise(c.Request.Context(), c.Param("id"), req.ExerciseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DetachExercise removes every summary of the exercise from the plan.
func (h *WorkoutPlanHandler) DetachExercise(c *gin.Context) {
	plan, err := h.planService.DetachExercise(c.Request.Context(), c.Param("id"), c.Param("exerciseId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
