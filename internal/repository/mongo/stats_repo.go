package mongo

import (
	"context"

	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoStatsRepository implements repository.StatsRepository with
// aggregation pipelines.
type mongoStatsRepository struct {
	students     *mongo.Collection
	exercises    *mongo.Collection
	workoutPlans *mongo.Collection
}

// NewMongoStatsRepository creates the aggregation repository.
func NewMongoStatsRepository(db *mongo.Database) repository.StatsRepository {
	return &mongoStatsRepository{
		students:     db.Collection(studentCollectionName),
		exercises:    db.Collection(exerciseCollectionName),
		workoutPlans: db.Collection(workoutPlanCollectionName),
	}
}

func muscleGroupPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$muscleGroup"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// $avg ignores documents where weight is missing or null.
func averageWeightPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgWeight", Value: bson.D{{Key: "$avg", Value: "$weight"}}},
		}}},
	}
}

func plansForStudentPipeline(studentID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "studentId", Value: studentID}}}},
		{{Key: "$count", Value: "total"}},
	}
}

// CountExercisesByMuscleGroup maps each muscle group to its exercise count.
func (r *mongoStatsRepository) CountExercisesByMuscleGroup(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Group string `bson:"_id"`
		Total int64  `bson:"total"`
	}
	if err := aggregate(ctx, r.exercises, muscleGroupPipeline(), &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Group] = row.Total
	}
	return counts, nil
}

// AverageStudentWeight returns the mean recorded weight, or 0.
func (r *mongoStatsRepository) AverageStudentWeight(ctx context.Context) (float64, error) {
	var rows []struct {
		AvgWeight *float64 `bson:"avgWeight"`
	}
	if err := aggregate(ctx, r.students, averageWeightPipeline(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].AvgWeight == nil {
		return 0, nil
	}
	return *rows[0].AvgWeight, nil
}

// CountWorkoutPlansByStudent counts the plans referencing the student.
func (r *mongoStatsRepository) CountWorkoutPlansByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error) {
	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := aggregate(ctx, r.workoutPlans, plansForStudentPipeline(studentID), &rows); err != nil {
		return 0, err
	}
	// $count emits no document at all when nothing matched
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, results interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}
