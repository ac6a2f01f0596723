package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class es una clase registrada por un usuario en su horario.
type Class struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	Title      string             `bson:"title" json:"title"`
	Subject    string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Instructor string             `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Schedule   string             `bson:"schedule,omitempty" json:"schedule,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
