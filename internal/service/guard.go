package service

// Action es el tipo de operación que se intenta sobre un recurso con dueño.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionDelete
)

// Guard decide si una identidad verificada puede actuar sobre un recurso
// según su dueño declarado. La regla es igualdad exacta de strings, sin
// normalización y sin excepciones por tipo de acción.
type Guard struct{}

// Authorize permite la acción solo si la identidad coincide con el dueño.
func (Guard) Authorize(verified Identity, declaredOwner string, _ Action) error {
	if verified.Email == "" || declaredOwner == "" {
		return ErrForbidden
	}
	if verified.Email != declaredOwner {
		return ErrForbidden
	}
	return nil
}
