package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/stock"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa stock.Authority.
var _ stock.Authority = (*Client)(nil)

// Client adaptador HTTP del puerto stock.Authority contra el backend de
// inventario (JSON sobre HTTP: GET /items/, GET /movements/,
// POST /items/{id}/adjust, DELETE /movements/).
// Usa net/http de la stdlib; no requiere librerías de terceros.
// Sin timeout ni cancelación: una petición colgada deja la acción pendiente
// en lugar de abortarla a medias.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente. baseURL incluye el prefijo /api
// (ej: http://localhost:8000/api).
func New(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

// adjustRequest cuerpo de POST /items/{id}/adjust.
type adjustRequest struct {
	Change int64 `json:"change"`
}

// ListItems descarga la colección completa de ítems.
func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.getJSON(ctx, "/items/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListMovements descarga el historial completo de movimientos.
func (c *Client) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	var movements []domain.Movement
	if err := c.getJSON(ctx, "/movements/", &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// AdjustStock envía el delta de una acción. Cualquier 2xx es aceptación; en
// rechazo devuelve el detalle que reporte el servidor.
func (c *Client) AdjustStock(ctx context.Context, itemID, change int64) error {
	body, err := json.Marshal(adjustRequest{Change: change})
	if err != nil {
		return fmt.Errorf("serializar ajuste: %w", err)
	}
	url := fmt.Sprintf("%s/items/%d/adjust", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return c.authorityError(resp)
}

// ClearMovements borra el historial completo. El 204 (No Content) también es
// una respuesta de éxito para DELETE.
func (c *Client) ClearMovements(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/movements/", nil)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return c.authorityError(resp)
}

// do ejecuta la petición con un X-Request-ID para correlacionar con los logs
// del servidor. Un fallo de red se reporta como servidor inalcanzable.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).
			Str("request_id", reqID).
			Str("url", req.URL.String()).
			Msg("petición fallida")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.authorityError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: respuesta malformada: %v", domain.ErrUnreachable, err)
	}
	return nil
}

// authorityError construye el error a partir del cuerpo {"detail": "..."}
// que devuelve el backend en los rechazos. Si no hay detalle, AuthorityError
// produce un mensaje genérico con el código HTTP.
func (c *Client) authorityError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &payload)
	return &domain.AuthorityError{Status: resp.StatusCode, Detail: payload.Detail}
}
