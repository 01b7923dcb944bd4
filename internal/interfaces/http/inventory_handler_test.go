package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/infrastructure/memory"
	apphttp "github.com/santigarciamarzano/stock-almacen-prueba/internal/interfaces/http"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// buildTestApp construye una aplicación Fiber mínima con el repositorio en
// memoria y las rutas reales del backend.
func buildTestApp(items ...domain.Item) *fiber.App {
	repo := memory.NewRepository()
	repo.Seed(items...)
	uc := authority.NewUseCase(repo, repo.Items(), repo.Movements(), logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Inventory: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestListItems_DevuelveLaColeccionOrdenada(t *testing.T) {
	app := buildTestApp(
		domain.Item{SKU: "A1", EAN13: "", Stock: 10},
		domain.Item{SKU: "B2", EAN13: "8412345678905", Stock: 0},
	)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/items/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []domain.Item
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "A1", items[0].SKU)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestAdjust_AceptaDeltaYDevuelveElItem(t *testing.T) {
	app := buildTestApp(domain.Item{SKU: "A1", Stock: 10})

	resp, raw := doJSON(t, app, http.MethodPost, "/api/items/1/adjust", `{"change":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item domain.Item
	require.NoError(t, json.Unmarshal(raw, &item))
	assert.Equal(t, int64(15), item.Stock)

	// El ajuste quedó en el historial.
	resp, raw = doJSON(t, app, http.MethodGet, "/api/movements/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var movs []domain.Movement
	require.NoError(t, json.Unmarshal(raw, &movs))
	require.Len(t, movs, 1)
	assert.Equal(t, int64(5), movs[0].Change)
}

func TestAdjust_ItemInexistenteDevuelve404ConDetail(t *testing.T) {
	app := buildTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/items/99/adjust", `{"change":1}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Item not found"}`, string(raw))
}

func TestAdjust_StockNegativoDevuelve400ConDetail(t *testing.T) {
	app := buildTestApp(domain.Item{SKU: "A1", Stock: 3})

	resp, raw := doJSON(t, app, http.MethodPost, "/api/items/1/adjust", `{"change":-4}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Stock cannot be negative"}`, string(raw))

	// El rechazo no tocó el stock.
	resp, raw = doJSON(t, app, http.MethodGet, "/api/items/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []domain.Item
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Equal(t, int64(3), items[0].Stock)
}

func TestAdjust_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := buildTestApp(domain.Item{SKU: "A1", Stock: 3})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/items/1/adjust", `{esto no es json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClearMovements_Devuelve204YVaciaElHistorial(t *testing.T) {
	app := buildTestApp(domain.Item{SKU: "A1", Stock: 10})

	_, _ = doJSON(t, app, http.MethodPost, "/api/items/1/adjust", `{"change":5}`)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/movements/", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/movements/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))

	// Repetir el borrado con historial vacío sigue siendo 204.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/movements/", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
