// Package memory implementa los puertos de persistencia del backend en
// memoria; para tests y para el modo demo sin PostgreSQL (STORAGE=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

var (
	_ authority.ItemRepository     = itemsView{}
	_ authority.MovementRepository = movementsView{}
	_ authority.TxRunner           = (*Repository)(nil)
)

// Repository estado en memoria protegido por un mutex. Expone vistas que
// implementan ItemRepository y MovementRepository, e implementa TxRunner:
// Run toma el candado una vez y pasa vistas sin candado, con rollback por
// copia si el callback falla.
type Repository struct {
	mu             sync.Mutex
	items          []domain.Item
	movements      []domain.Movement
	nextItemID     int64
	nextMovementID int64
}

// NewRepository construye el repositorio vacío.
func NewRepository() *Repository {
	return &Repository{nextItemID: 1, nextMovementID: 1}
}

// Items vista con candado sobre los ítems.
func (r *Repository) Items() authority.ItemRepository { return itemsView{r} }

// Movements vista con candado sobre el historial.
func (r *Repository) Movements() authority.MovementRepository { return movementsView{r} }

// Seed inserta ítems iniciales (modo demo).
func (r *Repository) Seed(items ...domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		it.ID = r.nextItemID
		r.nextItemID++
		r.items = append(r.items, it)
	}
}

// Run emula una transacción: toma el candado, guarda una copia del estado y
// la restaura si fn devuelve error.
func (r *Repository) Run(ctx context.Context, fn func(items authority.ItemRepository, movements authority.MovementRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	backupItems := append([]domain.Item(nil), r.items...)
	backupMovements := append([]domain.Movement(nil), r.movements...)
	backupItemID, backupMovementID := r.nextItemID, r.nextMovementID

	if err := fn(txItems{r}, txMovements{r}); err != nil {
		r.items = backupItems
		r.movements = backupMovements
		r.nextItemID, r.nextMovementID = backupItemID, backupMovementID
		return err
	}
	return nil
}

// ── Vistas con candado (uso fuera de transacción) ─────────────────────────────

type itemsView struct{ r *Repository }

func (v itemsView) List(ctx context.Context) ([]domain.Item, error) {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.listItems(), nil
}

func (v itemsView) GetForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.getItem(id), nil
}

func (v itemsView) UpdateStock(ctx context.Context, id, stock int64) error {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.updateStock(id, stock)
}

type movementsView struct{ r *Repository }

func (v movementsView) List(ctx context.Context) ([]domain.Movement, error) {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.listMovements(), nil
}

func (v movementsView) Create(ctx context.Context, itemID, change int64) (*domain.Movement, error) {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.createMovement(itemID, change), nil
}

func (v movementsView) DeleteAll(ctx context.Context) (int64, error) {
	v.r.mu.Lock()
	defer v.r.mu.Unlock()
	return v.r.deleteMovements(), nil
}

// ── Vistas sin candado (dentro de Run, que ya lo tiene) ───────────────────────

type txItems struct{ r *Repository }

func (v txItems) List(ctx context.Context) ([]domain.Item, error) { return v.r.listItems(), nil }
func (v txItems) GetForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	return v.r.getItem(id), nil
}
func (v txItems) UpdateStock(ctx context.Context, id, stock int64) error {
	return v.r.updateStock(id, stock)
}

type txMovements struct{ r *Repository }

func (v txMovements) List(ctx context.Context) ([]domain.Movement, error) {
	return v.r.listMovements(), nil
}
func (v txMovements) Create(ctx context.Context, itemID, change int64) (*domain.Movement, error) {
	return v.r.createMovement(itemID, change), nil
}
func (v txMovements) DeleteAll(ctx context.Context) (int64, error) {
	return v.r.deleteMovements(), nil
}

// ── Operaciones internas (requieren el candado tomado) ────────────────────────

func (r *Repository) listItems() []domain.Item {
	out := make([]domain.Item, 0, len(r.items))
	return append(out, r.items...)
}

func (r *Repository) getItem(id int64) *domain.Item {
	for _, it := range r.items {
		if it.ID == id {
			copia := it
			return &copia
		}
	}
	return nil
}

func (r *Repository) updateStock(id, stock int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

// listMovements devuelve el historial más recientes primero (orden inverso
// de inserción, equivalente a ORDER BY timestamp DESC).
func (r *Repository) listMovements() []domain.Movement {
	out := make([]domain.Movement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		out = append(out, r.movements[i])
	}
	return out
}

func (r *Repository) createMovement(itemID, change int64) *domain.Movement {
	m := domain.Movement{
		ID:        r.nextMovementID,
		ItemID:    itemID,
		Change:    change,
		Timestamp: time.Now().UTC(),
	}
	r.nextMovementID++
	r.movements = append(r.movements, m)
	return &m
}

func (r *Repository) deleteMovements() int64 {
	n := int64(len(r.movements))
	r.movements = nil
	return n
}
