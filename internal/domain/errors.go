package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNegativeStock = errors.New("el stock no puede quedar negativo")
	ErrItemNotCached = errors.New("ítem no presente en el último snapshot")
	ErrUnreachable   = errors.New("no se pudo conectar con el servidor")
)

// AuthorityError rechazo explícito del backend: la petición llegó y el
// servidor respondió con un estado de error y, normalmente, un campo "detail"
// explicando el motivo (ej. "Stock cannot be negative").
type AuthorityError struct {
	Status int
	Detail string
}

// Error devuelve el detalle del servidor o un mensaje genérico si no lo hay.
func (e *AuthorityError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el servidor rechazó la operación (HTTP %d)", e.Status)
}
