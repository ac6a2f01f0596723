package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question es una pregunta de quiz. Las del banco público no llevan dueño;
// las enviadas por usuarios llevan el email de quien las propuso.
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Options   []string           `bson:"options" json:"options"`
	Answer    string             `bson:"answer" json:"answer"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
