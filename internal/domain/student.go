// internal/domain/student.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is an independent top-level document. Workout plans reference it
// by ID; it does not own them.
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Weight    *float64           `bson:"weight" json:"weight"` // kg, nil when not recorded
	Height    *float64           `bson:"height" json:"height"` // m, nil when not recorded
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
