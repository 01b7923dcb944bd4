package postgres

import (
	"context"
	"fmt"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

var _ authority.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// List devuelve el historial completo, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]domain.Movement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, item_id, change, timestamp FROM movements ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.Movement, 0)
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Change, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// Create registra un movimiento; id y timestamp los pone la base de datos.
func (r *MovementRepo) Create(ctx context.Context, itemID, change int64) (*domain.Movement, error) {
	const query = `
		INSERT INTO movements (item_id, change)
		VALUES ($1, $2)
		RETURNING id, item_id, change, timestamp`
	var m domain.Movement
	err := r.q.QueryRow(ctx, query, itemID, change).Scan(&m.ID, &m.ItemID, &m.Change, &m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}
	return &m, nil
}

// DeleteAll borra el historial completo y devuelve cuántas filas había.
func (r *MovementRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM movements`)
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	return tag.RowsAffected(), nil
}
