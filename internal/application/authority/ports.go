package authority

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

// ItemRepository puerto de persistencia de ítems.
type ItemRepository interface {
	// List devuelve todos los ítems ordenados por id.
	List(ctx context.Context) ([]domain.Item, error)
	// GetForUpdate obtiene un ítem bloqueando su fila para la transacción en
	// curso. Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id int64) (*domain.Item, error)
	// UpdateStock fija el stock resultante de un ajuste.
	UpdateStock(ctx context.Context, id, stock int64) error
}

// MovementRepository puerto de persistencia del historial de movimientos.
type MovementRepository interface {
	// List devuelve todos los movimientos, más recientes primero.
	List(ctx context.Context) ([]domain.Movement, error)
	// Create registra un movimiento; el timestamp lo pone la base de datos.
	Create(ctx context.Context, itemID, change int64) (*domain.Movement, error)
	// DeleteAll borra el historial completo y devuelve cuántas filas había.
	DeleteAll(ctx context.Context) (int64, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento y el nuevo stock
// se persisten juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(items ItemRepository, movements MovementRepository) error) error
}
