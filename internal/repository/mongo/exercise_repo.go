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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List retrieves the whole catalog.
func (r *mongoExerciseRepository) List(ctx context.Context, opts repository.ListOptions) ([]domain.Exercise, error) {
	findOpts, err := findOptions(opts)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Exercise](ctx, r.collection, bson.M{}, findOpts)
}

// Replace overwrites the catalog fields of an exercise. The media key is
// managed separately through SetMediaKey and is left untouched.
func (r *mongoExerciseRepository) Replace(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required for replace")
	}

	update := bson.M{
		"$set": bson.M{
			"name":        exercise.Name,
			"muscleGroup": exercise.MuscleGroup,
			"difficulty":  exercise.Difficulty,
			"series":      exercise.Series,
			"repetitions": exercise.Repetitions,
			"description": exercise.Description,
			"updatedAt":   time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Exercise
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": exercise.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// SetMediaKey records the object storage key of the exercise's demo file.
func (r *mongoExerciseRepository) SetMediaKey(ctx context.Context, id primitive.ObjectID, key string) error {
	update := bson.M{"$set": bson.M{"mediaKey": key, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an exercise. Summaries already embedded in workout plans
// keep their copy.
func (r *mongoExerciseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func exerciseIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// Grouping by muscle group
			Keys:    bson.D{{Key: "muscleGroup", Value: 1}},
			Options: options.Index().SetName("exercise_muscle_group"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("exercise_name"),
		},
	}
}
