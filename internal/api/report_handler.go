package api

import (
	"net/http"

	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only aggregate endpoints.
type ReportHandler struct {
	reportService service.ReportService
	log           *logger.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// SearchStudents matches ?name= anywhere in the student name, ignoring case.
// An empty fragment matches everyone.
func (h *ReportHandler) SearchStudents(c *gin.Context) {
	students, err := h.reportService.SearchStudentsByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentsToResponse(students))
}

func (h *ReportHandler) CountStudents(c *gin.Context) {
	total, err := h.reportService.CountStudents(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// AverageWeight godoc
// @Summary Mean weight over students with a recorded weight
// @Tags Reports
// @Produce json
// @Success 200 {object} gin.H "{\"averageWeight\": 75}"
// @Router /students/average-weight [get]
func (h *ReportHandler) AverageWeight(c *gin.Context) {
	avg, err := h.reportService.AverageStudentWeight(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"averageWeight": avg})
}

func (h *ReportHandler) StudentBMI(c *gin.Context) {
	bmi, err := h.reportService.StudentBMI(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, bmi)
}

func (h *ReportHandler) CountStudentWorkoutPlans(c *gin.Context) {
	count, err := h.reportService.CountWorkoutPlansForStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// CountByMuscleGroup godoc
// @Summary Number of exercises per muscle group
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /exercises/count-by-muscle-group [get]
func (h *ReportHandler) CountByMuscleGroup(c *gin.Context) {
	counts, err := h.reportService.CountExercisesByMuscleGroup(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
