package stock

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

// Authority puerto de salida hacia el backend de inventario, que es el dueño
// del estado canónico. El cliente nunca calcula valores provisionales: lee
// colecciones completas y envía deltas; la implementación concreta es HTTP
// (internal/infrastructure/api) y para tests se inyecta un fake.
type Authority interface {
	// ListItems devuelve la colección completa de ítems.
	ListItems(ctx context.Context) ([]domain.Item, error)
	// ListMovements devuelve el historial completo de movimientos.
	ListMovements(ctx context.Context) ([]domain.Movement, error)
	// AdjustStock aplica un delta con signo al stock de un ítem.
	AdjustStock(ctx context.Context, itemID, change int64) error
	// ClearMovements borra el historial completo de movimientos.
	ClearMovements(ctx context.Context) error
}

// Confirmer pide al operador una confirmación explícita antes de ejecutar una
// acción irreversible. Devuelve true solo ante una afirmación expresa.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adaptador para usar una función como Confirmer.
type ConfirmerFunc func(prompt string) bool

// Confirm implementa Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }
