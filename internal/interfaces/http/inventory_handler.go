package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

// InventoryHandler expone el contrato HTTP del backend de inventario. Los
// errores salen siempre como {"detail": "..."}: el cliente de consola depende
// de ese campo para mostrar el motivo del rechazo.
type InventoryHandler struct {
	uc *authority.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *authority.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// adjustRequest cuerpo de POST /api/items/:id/adjust.
type adjustRequest struct {
	Change int64 `json:"change"`
}

// ListItems GET /api/items/ — todos los ítems ordenados por id.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.uc.ListItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(items)
}

// ListMovements GET /api/movements/ — historial completo, más recientes primero.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(movements)
}

// AdjustStock POST /api/items/:id/adjust — aplica un delta con signo y
// devuelve el ítem resultante.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid item id"})
	}
	var in adjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	item, err := h.uc.AdjustStock(c.Context(), int64(id), in.Change)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Item not found"})
		}
		if errors.Is(err, domain.ErrNegativeStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Stock cannot be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(item)
}

// ClearMovements DELETE /api/movements/ — borra el historial completo.
// Responde 204 (No Content) en éxito.
func (h *InventoryHandler) ClearMovements(c *fiber.Ctx) error {
	if _, err := h.uc.ClearMovements(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": fmt.Sprintf("An error occurred: %v", err)})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
