package service

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseResourceID valida que el identificador sea un ObjectID bien
// formado. Un identificador malformado es error de validación (400),
// distinto de un recurso ausente (404).
func parseResourceID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, ErrValidation
	}
	return id, nil
}
