// internal/domain/report.go
package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// StudentWorkoutPlans is the student -> plans -> exercises join.
type StudentWorkoutPlans struct {
	StudentID   primitive.ObjectID     `json:"studentId"`
	StudentName string                 `json:"studentName"`
	Plans       []WorkoutPlanExercises `json:"plans"`
}

// WorkoutPlanExercises is one plan with its summaries resolved to the current
// exercise documents.
type WorkoutPlanExercises struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Weekday   string             `json:"weekday"`
	Exercises []Exercise         `json:"exercises"`
}

// StudentPlanCount reports how many workout plans reference a student.
type StudentPlanCount struct {
	StudentID         primitive.ObjectID `json:"studentId"`
	Name              string             `json:"name"`
	TotalWorkoutPlans int64              `json:"totalWorkoutPlans"`
}

// StudentBMI holds a body-mass index rounded to two decimals.
type StudentBMI struct {
	Name string  `json:"name"`
	BMI  float64 `json:"bmi"`
}
