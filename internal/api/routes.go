package api

import (
	"net/http"

	"github.com/Yaghost/FitGoal/internal/config"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the handlers depend on.
type Services struct {
	Students     service.StudentService
	Exercises    service.ExerciseService
	WorkoutPlans service.WorkoutPlanService
	Reports      service.ReportService
}

func SetupRoutes(router *gin.Engine, log *logger.Logger, corsCfg config.CORSConfig, services Services) {
	studentHandler := NewStudentHandler(services.Students, log)
	exerciseHandler := NewExerciseHandler(services.Exercises, log)
	planHandler := NewWorkoutPlanHandler(services.WorkoutPlans, services.Reports, log)
	reportHandler := NewReportHandler(services.Reports, log)

	router.Use(RequestID(), RequestLogger(log), CORS(corsCfg))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bem-vindo à API FitGoal!"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// --- Student Routes ---
	students := apiV1.Group("/students")
	{
		students.POST("", studentHandler.CreateStudent)
		students.GET("", studentHandler.ListStudents)
		students.GET("/search", reportHandler.SearchStudents)
		students.GET("/count", reportHandler.CountStudents)
		students.GET("/average-weight", reportHandler.AverageWeight)

		students.GET("/:id", studentHandler.GetStudent)
		students.PUT("/:id", studentHandler.ReplaceStudent)
		students.DELETE("/:id", studentHandler.DeleteStudent)
		students.GET("/:id/bmi", reportHandler.StudentBMI)

		students.POST("/:id/workout-plans", planHandler.CreateWorkoutPlan)
		students.GET("/:id/workout-plans", planHandler.GetStudentWorkoutPlans)
		students.GET("/:id/workout-plans/count", reportHandler.CountStudentWorkoutPlans)
	}

	// --- Exercise Routes ---
	exercises := apiV1.Group("/exercises")
	{
		exercises.POST("", exerciseHandler.CreateExercise)
		exercises.GET("", exerciseHandler.ListExercises)
		exercises.GET("/count-by-muscle-group", reportHandler.CountByMuscleGroup)

		exercises.GET("/:id", exerciseHandler.GetExercise)
		exercises.PUT("/:id", exerciseHandler.ReplaceExercise)
		exercises.DELETE("/:id", exerciseHandler.DeleteExercise)

		exercises.POST("/:id/media", exerciseHandler.RequestMediaUpload)
		exercises.GET("/:id/media", exerciseHandler.GetMediaURL)
	}

	// --- Workout Plan Routes ---
	plans := apiV1.Group("/workout-plans")
	{
		plans.GET("", planHandler.ListWorkoutPlans)
		plans.GET("/:id", planHandler.GetWorkoutPlan)
		plans.PUT("/:id", planHandler.ReplaceWorkoutPlan)
		plans.DELETE("/:id", planHandler.DeleteWorkoutPlan)

		plans.POST("/:id/exercises", planHandler.AttachExercise)
		plans.DELETE("/:id/exercises/:exerciseId", planHandler.DetachExercise)
	}
}
