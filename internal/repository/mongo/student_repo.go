// internal/repository/mongo/student_repo.go
package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Yaghost/FitGoal/internal/domain"
	"github.com/Yaghost/FitGoal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const studentCollectionName = "students"

// mongoStudentRepository implements repository.StudentRepository
type mongoStudentRepository struct {
	collection *mongo.Collection
}

// NewMongoStudentRepository creates a new Student repository backed by MongoDB.
func NewMongoStudentRepository(db *mongo.Database) repository.StudentRepository {
	return &mongoStudentRepository{
		collection: db.Collection(studentCollectionName),
	}
}

// Create inserts a new student and assigns its ID and timestamps.
func (r *mongoStudentRepository) Create(ctx context.Context, student *domain.Student) (primitive.ObjectID, error) {
	student.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted student ID")
	}
	return insertedID, nil
}

// GetByID retrieves a student by its ID.
func (r *mongoStudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	var student domain.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// List returns every student, optionally sorted.
func (r *mongoStudentRepository) List(ctx context.Context, opts repository.ListOptions) ([]domain.Student, error) {
	findOpts, err := findOptions(opts)
	if err != nil {
		return nil, err
	}
	return findAll[domain.Student](ctx, r.collection, bson.M{}, findOpts)
}

// SearchByName matches the fragment anywhere in the name, ignoring case. The
// fragment is escaped so it is matched literally.
func (r *mongoStudentRepository) SearchByName(ctx context.Context, fragment string) ([]domain.Student, error) {
	return findAll[domain.Student](ctx, r.collection, nameContainsFilter(fragment), options.Find())
}

func nameContainsFilter(fragment string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}}
}

// Count returns the number of stored students.
func (r *mongoStudentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Replace overwrites all mutable fields and returns the stored document.
func (r *mongoStudentRepository) Replace(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if student.ID == primitive.NilObjectID {
		return nil, errors.New("student ID is required for replace")
	}
	update := bson.M{
		"$set": bson.M{
			"name":      student.Name,
			"email":     student.Email,
			"phone":     student.Phone,
			"weight":    student.Weight,
			"height":    student.Height,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Student
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": student.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a student. Workout plans referencing it are left in place.
func (r *mongoStudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func studentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// Sorted listing by name
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("student_name"),
		},
	}
}
