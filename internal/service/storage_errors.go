package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mapStorageErr traduce la ausencia de documento del driver a la
// taxonomía del servicio; cualquier otra falla de storage sube tal cual
// y la capa HTTP la reporta como falla interna genérica.
func mapStorageErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
