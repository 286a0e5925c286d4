package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yaghost/FitGoal/internal/api"
	"github.com/Yaghost/FitGoal/internal/config"
	"github.com/Yaghost/FitGoal/internal/logger"
	"github.com/Yaghost/FitGoal/internal/repository"
	"github.com/Yaghost/FitGoal/internal/repository/memory"
	"github.com/Yaghost/FitGoal/internal/repository/mongo"
	"github.com/Yaghost/FitGoal/internal/service"
	"github.com/Yaghost/FitGoal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var inMemory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API on server.address and block until SIGINT or SIGTERM.

With --in-memory no MongoDB connection is made and all data lives in the
process. Media endpoints answer 503 unless s3.bucket_name is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep all data in process memory instead of MongoDB")
}

// repositories is the set of stores the services are built from.
type repositories struct {
	students     repository.StudentRepository
	exercises    repository.ExerciseRepository
	workoutPlans repository.WorkoutPlanRepository
	stats        repository.StatsRepository
}

func newServices(repos repositories, fileStorage storage.FileStorage, log *logger.Logger) api.Services {
	return api.Services{
		Students:     service.NewStudentService(repos.students),
		Exercises:    service.NewExerciseService(repos.exercises, fileStorage, log),
		WorkoutPlans: service.NewWorkoutPlanService(repos.workoutPlans, repos.students, repos.exercises),
		Reports:      service.NewReportService(repos.stats, repos.students, repos.workoutPlans),
	}
}

// newFileStorage returns a nil interface when no bucket is configured.
func newFileStorage(ctx context.Context, s3Cfg config.S3Config, log *logger.Logger) (storage.FileStorage, error) {
	if !s3Cfg.Enabled() {
		log.Warn("s3.bucket_name is empty; exercise media endpoints are disabled")
		return nil, nil
	}
	return storage.NewS3Storage(ctx, s3Cfg, log)
}

func runServer(ctx context.Context) error {
	log.Info("Starting FitGoal server...", "in_memory", inMemory)

	var repos repositories
	if inMemory {
		store := memory.NewStore()
		repos = repositories{
			students:     store.Students(),
			exercises:    store.Exercises(),
			workoutPlans: store.WorkoutPlans(),
			stats:        store.Stats(),
		}
		log.Warn("Using in-memory store; data will not survive a restart")
	} else {
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Error("Failed to disconnect MongoDB", "error", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Info("Database connection established", "database", cfg.Database.Name)

		go func() {
			indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureIndexes(indexCtx, appDB, log)
		}()

		repos = repositories{
			students:     mongo.NewMongoStudentRepository(appDB),
			exercises:    mongo.NewMongoExerciseRepository(appDB),
			workoutPlans: mongo.NewMongoWorkoutPlanRepository(appDB),
			stats:        mongo.NewMongoStatsRepository(appDB),
		}
	}

	fileStorage, err := newFileStorage(ctx, cfg.S3, log)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, log, cfg.CORS, newServices(repos, fileStorage, log))

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server exiting")
	return nil
}
