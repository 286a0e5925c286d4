package api

import (
	"net/http"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// StudentHandler serves the student CRUD endpoints.
type StudentHandler struct {
	studentService service.StudentService
	log            *logger.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService, log *logger.Logger) *StudentHandler {
	return &StudentHandler{studentService: studentService, log: log}
}

// --- DTOs ---

// StudentRequest is the body of both create and replace. Every field is
// optional and replace writes all of them, so omitting weight clears it.
type StudentRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email" binding:"omitempty,email"`
	Phone  string   `json:"phone"`
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"` // kg
	Height *float64 `json:"height" binding:"omitempty,gt=0"` // m
}

func (r StudentRequest) toInput() service.StudentInput {
	return service.StudentInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Weight: r.Weight,
		Height: r.Height,
	}
}

// StudentResponse is the DTO for returning student details.
type StudentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Weight    *float64  `json:"weight"`
	Height    *float64  `json:"height"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapStudentToResponse converts a domain.Student to StudentResponse DTO.
func MapStudentToResponse(st *domain.Student) StudentResponse {
	if st == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:        st.ID.Hex(),
		Name:      st.Name,
		Email:     st.Email,
		Phone:     st.Phone,
		Weight:    st.Weight,
		Height:    st.Height,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

// MapStudentsToResponse converts a slice of domain.Student, never returning nil.
func MapStudentsToResponse(students []domain.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = MapStudentToResponse(&students[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateStudent godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param student body StudentRequest true "Student details"
// @Success 201 {object} StudentResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.studentService.CreateStudent(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapStudentToResponse(student))
}

// ListStudents godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param sort query string false "name, createdAt, -name or -createdAt"
// @Success 200 {array} StudentResponse
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context(), c.Query("sort"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentsToResponse(students))
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentService.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentToResponse(student))
}

func (h *StudentHandler) ReplaceStudent(c *gin.Context) {
	var req StudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.studentService.ReplaceStudent(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapStudentToResponse(student))
}

// DeleteStudent removes the student only. Its workout plans stay in the
// store but are unreachable through student-scoped endpoints.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
