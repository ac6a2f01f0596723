package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User es el perfil básico registrado desde el cliente.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
