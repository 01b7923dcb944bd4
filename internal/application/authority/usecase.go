package authority

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// UseCase lógica del backend de inventario: lecturas de colecciones
// completas, ajuste de stock por delta y borrado del historial. El invariante
// que mantiene: el stock de un ítem es la suma de los changes de sus
// movimientos desde el último borrado, y nunca queda negativo.
type UseCase struct {
	txRunner  TxRunner
	items     ItemRepository
	movements MovementRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, items ItemRepository, movements MovementRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, items: items, movements: movements, log: log}
}

// ListItems devuelve todos los ítems ordenados por id.
func (uc *UseCase) ListItems(ctx context.Context) ([]domain.Item, error) {
	return uc.items.List(ctx)
}

// ListMovements devuelve el historial completo, más recientes primero.
func (uc *UseCase) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	return uc.movements.List(ctx)
}

// AdjustStock aplica un delta con signo al stock de un ítem dentro de una
// transacción con bloqueo de fila. Reglas:
//   - ítem inexistente -> domain.ErrNotFound
//   - stock + change < 0 -> domain.ErrNegativeStock, sin cambios
//   - change == 0 -> sin movimiento y sin cambio de stock, devuelve el ítem
//
// Devuelve el ítem con el stock resultante.
func (uc *UseCase) AdjustStock(ctx context.Context, itemID, change int64) (*domain.Item, error) {
	var result *domain.Item
	err := uc.txRunner.Run(ctx, func(items ItemRepository, movements MovementRepository) error {
		item, err := items.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Stock+change < 0 {
			return domain.ErrNegativeStock
		}
		if change == 0 {
			result = item
			return nil
		}
		if _, err := movements.Create(ctx, itemID, change); err != nil {
			return err
		}
		item.Stock += change
		if err := items.UpdateStock(ctx, itemID, item.Stock); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("item_id", itemID).
		Int64("change", change).
		Int64("stock", result.Stock).
		Msg("stock ajustado")
	return result, nil
}

// ClearMovements borra el historial completo y devuelve cuántos movimientos
// había. Es idempotente: con historial vacío devuelve 0 sin error.
func (uc *UseCase) ClearMovements(ctx context.Context) (int64, error) {
	deleted, err := uc.movements.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("borrados", deleted).Msg("historial de movimientos limpiado")
	return deleted, nil
}
