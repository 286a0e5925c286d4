// internal/domain/workout_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlan belongs to one student (by reference) and owns an ordered list
// of exercise summaries.
type WorkoutPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Weekday   string             `bson:"weekday" json:"weekday"`     // Free-form label, e.g. "Segunda-feira"
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"` // Reference only, never embedded
	Exercises []ExerciseSummary  `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseSummary is the denormalized copy of an Exercise stored inside a
// plan. It is not refreshed when the source exercise changes.
type ExerciseSummary struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name        string             `bson:"name" json:"name"`
	Series      int                `bson:"series" json:"series"`
	Repetitions int                `bson:"repetitions" json:"repetitions"`
}

// Clone returns a copy whose exercise list does not share backing storage.
func (p *WorkoutPlan) Clone() *WorkoutPlan {
	cp := *p
	if p.Exercises != nil {
		cp.Exercises = make([]ExerciseSummary, len(p.Exercises))
		copy(cp.Exercises, p.Exercises)
	}
	return &cp
}
