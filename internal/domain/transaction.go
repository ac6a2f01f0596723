package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction es un movimiento del presupuesto personal de un usuario.
type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
