package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyPlan es una entrada del plan de estudio de un usuario.
type StudyPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Topic     string             `bson:"topic" json:"topic"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Priority  string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
