package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

var _ authority.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// List devuelve todos los ítems ordenados por id.
func (r *ItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT id, sku, ean13, stock FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.SKU, &it.EAN13, &it.Stock); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetForUpdate obtiene un ítem bloqueando la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	const query = `SELECT id, sku, ean13, stock FROM items WHERE id = $1 FOR UPDATE`
	var it domain.Item
	err := r.q.QueryRow(ctx, query, id).Scan(&it.ID, &it.SKU, &it.EAN13, &it.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// UpdateStock fija el stock resultante de un ajuste.
func (r *ItemRepo) UpdateStock(ctx context.Context, id, stock int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE items SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Create inserta un ítem nuevo; para el seed. Ignora SKUs ya existentes.
func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) error {
	const query = `
		INSERT INTO items (sku, ean13, stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (sku) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, item.SKU, item.EAN13, item.Stock); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}
