// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the catalog.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup" json:"muscleGroup"` // e.g., "Peito", "Dorso", "Pernas"
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Series      int                `bson:"series" json:"series"`           // Required set count
	Repetitions int                `bson:"repetitions" json:"repetitions"` // Required repetitions per set
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	MediaKey    string             `bson:"mediaKey,omitempty" json:"mediaKey,omitempty"` // Object storage key of the demo video/image
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Summary takes a point-in-time copy of the fields a workout plan embeds.
func (e *Exercise) Summary() ExerciseSummary {
	return ExerciseSummary{
		ExerciseID:  e.ID,
		Name:        e.Name,
		Series:      e.Series,
		Repetitions: e.Repetitions,
	}
}
