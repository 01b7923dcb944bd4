package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/stock"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

func TestExecutor_ExitoDisparaExactamenteUnRefresh(t *testing.T) {
	auth := newFakeAuthority(domain.Item{ID: 1, SKU: "A1", EAN13: "", Stock: 10})
	store := stock.NewStore(auth, logger.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	exec := stock.NewExecutor(auth, store, logger.Nop())

	require.NoError(t, exec.ApplyDelta(context.Background(), 1, 5))

	// Una petición de ajuste y un único refresh (el inicial más el del éxito).
	assert.Equal(t, 1, auth.adjustCalls)
	assert.Equal(t, 2, auth.listItemsCalls)
	assert.Equal(t, 2, auth.listMovementsCalls)

	// El snapshot refleja el estado del servidor tras la mutación.
	item, ok := store.ItemByID(1)
	require.True(t, ok)
	assert.Equal(t, int64(15), item.Stock)
	require.Len(t, store.Snapshot().Movements, 1)
	assert.Equal(t, int64(5), store.Snapshot().Movements[0].Change)
}

func TestExecutor_FalloNoRefrescaNiTocaElSnapshot(t *testing.T) {
	auth := newFakeAuthority(domain.Item{ID: 1, SKU: "A1", Stock: 10})
	store := stock.NewStore(auth, logger.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	anterior := store.Snapshot()
	exec := stock.NewExecutor(auth, store, logger.Nop())

	err := exec.ApplyDelta(context.Background(), 1, -50)
	require.Error(t, err)

	var authErr *domain.AuthorityError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Stock cannot be negative", authErr.Detail)

	// Sin refresh: solo quedó el fetch inicial y el snapshot es el mismo.
	assert.Equal(t, 1, auth.listItemsCalls)
	assert.Equal(t, 1, auth.listMovementsCalls)
	assert.Same(t, anterior, store.Snapshot())
}

func TestExecutor_EscenarioEstablecerA15(t *testing.T) {
	// Ítem {id:1, sku:"A1", ean13:"", stock:10}; "dejar en 15" -> delta 5.
	auth := newFakeAuthority(domain.Item{ID: 1, SKU: "A1", EAN13: "", Stock: 10})
	store := stock.NewStore(auth, logger.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	tr := stock.NewTranslator(store)
	exec := stock.NewExecutor(auth, store, logger.Nop())

	delta, err := tr.AbsoluteDelta(1, "15")
	require.NoError(t, err)
	assert.Equal(t, int64(5), delta)
	require.NoError(t, exec.ApplyDelta(context.Background(), 1, delta))

	item, _ := store.ItemByID(1)
	assert.Equal(t, int64(15), item.Stock)
	movs := store.Snapshot().Movements
	require.Len(t, movs, 1)
	assert.Equal(t, int64(1), movs[0].ItemID)
	assert.Equal(t, int64(5), movs[0].Change)

	// Mismo ítem, "ajustar en -3": el delta va directo, sin lookup.
	delta, err = tr.RelativeDelta("-3")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), delta)
	require.NoError(t, exec.ApplyDelta(context.Background(), 1, delta))

	item, _ = store.ItemByID(1)
	assert.Equal(t, int64(12), item.Stock)
}

func TestExecutor_FalloDelRefreshPosteriorSeReporta(t *testing.T) {
	auth := newFakeAuthority(domain.Item{ID: 1, SKU: "A1", Stock: 10})
	store := stock.NewStore(auth, logger.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	anterior := store.Snapshot()
	exec := stock.NewExecutor(auth, store, logger.Nop())

	// La mutación entra pero la relectura falla: se conserva el snapshot
	// previo y queda el error de sincronización visible.
	auth.listItemsErr = domain.ErrUnreachable
	err := exec.ApplyDelta(context.Background(), 1, 5)
	require.ErrorIs(t, err, domain.ErrUnreachable)
	assert.Equal(t, 1, auth.adjustCalls)
	assert.Same(t, anterior, store.Snapshot())
	assert.Error(t, store.LastError())
}
