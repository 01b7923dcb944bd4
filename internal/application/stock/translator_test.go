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

func translatorConStock(t *testing.T, items ...domain.Item) (*stock.Translator, *fakeAuthority) {
	t.Helper()
	auth := newFakeAuthority(items...)
	store := stock.NewStore(auth, logger.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	return stock.NewTranslator(store), auth
}

func TestTranslator_AbsoluteDelta_EsObjetivoMenosCacheado(t *testing.T) {
	tr, _ := translatorConStock(t, domain.Item{ID: 1, SKU: "A1", EAN13: "", Stock: 10})

	casos := []struct {
		objetivo string
		delta    int64
	}{
		{"15", 5},  // subir
		{"3", -7},  // bajar
		{"10", 0},  // sin cambio
		{"0", -10}, // vaciar
	}
	for _, c := range casos {
		delta, err := tr.AbsoluteDelta(1, c.objetivo)
		require.NoError(t, err, "objetivo %s", c.objetivo)
		assert.Equal(t, c.delta, delta, "objetivo %s", c.objetivo)
	}
}

func TestTranslator_AbsoluteDelta_EntradaInvalidaAbortaSinPeticion(t *testing.T) {
	tr, auth := translatorConStock(t, domain.Item{ID: 1, SKU: "A1", Stock: 10})
	antes := auth.totalCalls()

	for _, raw := range []string{"-1", "abc", "", "3.5", "1e3"} {
		_, err := tr.AbsoluteDelta(1, raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", raw)
	}
	// La validación es local: ninguna entrada inválida llegó a la red.
	assert.Equal(t, antes, auth.totalCalls())
}

func TestTranslator_AbsoluteDelta_ItemFueraDelSnapshotAborta(t *testing.T) {
	tr, auth := translatorConStock(t, domain.Item{ID: 1, SKU: "A1", Stock: 10})
	antes := auth.totalCalls()

	_, err := tr.AbsoluteDelta(99, "5")
	// Sin baseline cacheado no se calcula delta: jamás se asume stock 0.
	assert.ErrorIs(t, err, domain.ErrItemNotCached)
	assert.Equal(t, antes, auth.totalCalls())
}

func TestTranslator_RelativeDelta_PasaElEnteroSinTransformar(t *testing.T) {
	tr, _ := translatorConStock(t)

	casos := map[string]int64{
		"10":  10,
		"-5":  -5,
		"0":   0,
		" 7 ": 7,
	}
	for raw, esperado := range casos {
		delta, err := tr.RelativeDelta(raw)
		require.NoError(t, err, "entrada %q", raw)
		assert.Equal(t, esperado, delta, "entrada %q", raw)
	}
}

func TestTranslator_RelativeDelta_NoNumericoAborta(t *testing.T) {
	tr, auth := translatorConStock(t)
	antes := auth.totalCalls()

	for _, raw := range []string{"abc", "", "2.5"} {
		_, err := tr.RelativeDelta(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", raw)
	}
	assert.Equal(t, antes, auth.totalCalls())
}
