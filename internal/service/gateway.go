package service

import "context"

// OwnerFetch devuelve el dueño almacenado de un recurso existente.
// Debe devolver ErrNotFound si el recurso no existe.
type OwnerFetch func(ctx context.Context) (string, error)

// EffectFn ejecuta la operación de storage y reporta cuántos documentos
// afectó realmente.
type EffectFn func(ctx context.Context) (int64, error)

// Gateway compone verificación de dueño y operación de storage. Todo
// acceso a recursos con dueño pasa por aquí; la regla de autorización
// vive en un solo lugar en vez de repetirse por ruta.
type Gateway struct {
	guard Guard
}

func NewGateway() Gateway {
	return Gateway{}
}

// Create autoriza al dueño declarado en el payload y luego inserta.
// Impide crear recursos atribuidos a otra identidad.
func (g Gateway) Create(ctx context.Context, verified Identity, declaredOwner string, insert func(ctx context.Context) error) error {
	if err := g.guard.Authorize(verified, declaredOwner, ActionWrite); err != nil {
		return err
	}
	return insert(ctx)
}

// Mutate ejecuta la secuencia fetch-check-act sobre un recurso existente.
// El dueño sale siempre del documento almacenado, nunca del request. La
// secuencia no es transaccional: si un borrado concurrente gana la
// carrera, apply afecta cero documentos y el resultado es ErrNotFound,
// nunca un éxito falso.
func (g Gateway) Mutate(ctx context.Context, verified Identity, action Action, fetchOwner OwnerFetch, apply EffectFn) error {
	owner, err := fetchOwner(ctx)
	if err != nil {
		return err
	}
	if err := g.guard.Authorize(verified, owner, action); err != nil {
		return err
	}
	affected, err := apply(ctx)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ScopeToOwner valida que un parámetro de identidad del query string
// coincida con la identidad verificada antes de operaciones por lote.
func (g Gateway) ScopeToOwner(verified Identity, requestedOwner string) error {
	return g.guard.Authorize(verified, requestedOwner, ActionRead)
}
