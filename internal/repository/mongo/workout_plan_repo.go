// internal/repository/mongo/workout_plan_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutPlanCollectionName = "workout_plans"

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutPlanRepository creates a new WorkoutPlan repository.
func NewMongoWorkoutPlanRepository(db *mongo.Database) repository.WorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

// Create inserts a new workout plan.
func (r *mongoWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.StudentID == primitive.NilObjectID || plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan requires studentId and name")
	}
	if plan.Exercises == nil {
		plan.Exercises = []domain.ExerciseSummary{}
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout plan by its ID.
func (r *mongoWorkoutPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// List retrieves every workout plan.
func (r *mongoWorkoutPlanRepository) List(ctx context.Context, opts repository.ListOptions) ([]domain.WorkoutPlan, error) {
	findOpts, err := findOptions(opts)
	if err != nil {
		return nil, err
	}
	return findAll[domain.WorkoutPlan](ctx, r.collection, bson.M{}, findOpts)
}

// ListByWeekday retrieves the plans whose weekday label equals the argument
// exactly. No case folding or normalization of day names.
func (r *mongoWorkoutPlanRepository) ListByWeekday(ctx context.Context, weekday string) ([]domain.WorkoutPlan, error) {
	return findAll[domain.WorkoutPlan](ctx, r.collection, bson.M{"weekday": weekday}, options.Find())
}

// Replace overwrites name, weekday, student reference and the embedded
// exercise list. Last writer wins.
func (r *mongoWorkoutPlanRepository) Replace(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if plan.ID == primitive.NilObjectID {
		return nil, errors.New("workout plan ID is required for replace")
	}
	exercises := plan.Exercises
	if exercises == nil {
		exercises = []domain.ExerciseSummary{}
	}

	updateDoc := bson.M{
		"$set": bson.M{
			"name":      plan.Name,
			"weekday":   plan.Weekday,
			"studentId": plan.StudentID,
			"exercises": exercises,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.WorkoutPlan
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": plan.ID}, updateDoc, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a workout plan.
func (r *mongoWorkoutPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func workoutPlanIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// Plan counts per student
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index().SetName("workout_plan_student"),
		},
		{
			Keys:    bson.D{{Key: "weekday", Value: 1}},
			Options: options.Index().SetName("workout_plan_weekday"),
		},
	}
}
