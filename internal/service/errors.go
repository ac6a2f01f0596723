package service

import "errors"

// Taxonomía de fallos del núcleo de acceso. Los handlers HTTP traducen
// cada uno a su código de estado; cualquier otro error es falla interna.
var (
	ErrValidation      = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)
