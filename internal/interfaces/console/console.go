// Package console capa de presentación del cliente: pinta el último Snapshot
// confirmado y atiende el bucle de comandos del operador. Nunca muestra un
// valor calculado en local: todo lo que pinta viene del Store.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/stock"
)

// Console bucle interactivo de la terminal.
type Console struct {
	store      *stock.Store
	translator *stock.Translator
	executor   *stock.Executor
	guard      *stock.Guard

	in  *bufio.Scanner
	out io.Writer
}

// New construye la consola. El guard se inyecta después con SetGuard porque
// necesita a la propia consola como Confirmer.
func New(store *stock.Store, translator *stock.Translator, executor *stock.Executor, in io.Reader, out io.Writer) *Console {
	return &Console{
		store:      store,
		translator: translator,
		executor:   executor,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// SetGuard fija el guard de acciones destructivas.
func (c *Console) SetGuard(g *stock.Guard) { c.guard = g }

// Confirm implementa stock.Confirmer: solo una respuesta afirmativa expresa
// (s/si/y/yes) cuenta como confirmación.
func (c *Console) Confirm(prompt string) bool {
	c.printf("%s (s/N): ", prompt)
	line, ok := c.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// Run sincroniza una primera vez y entra en el bucle de comandos. Termina con
// "salir" o al cerrarse la entrada.
func (c *Console) Run(ctx context.Context) error {
	// Antes del primer render no hay nada significativo que mostrar.
	if err := c.store.Refresh(ctx); err != nil {
		c.printf("Error: %v\n", err)
	}

	for {
		c.render()
		c.printf("> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "set", "establecer":
			c.handleSet(ctx, fields)
		case "adjust", "ajustar":
			c.handleAdjust(ctx, fields)
		case "clear", "limpiar":
			c.handleClear(ctx)
		case "refresh", "actualizar":
			if err := c.store.Refresh(ctx); err != nil {
				c.printf("Error: %v\n", err)
			}
		case "exit", "salir", "q":
			return nil
		default:
			c.printHelp()
		}
	}
}

// handleSet intención absoluta: "dejar el stock del ítem en X".
func (c *Console) handleSet(ctx context.Context, fields []string) {
	id, ok := c.parseItemID(fields)
	if !ok {
		return
	}
	raw, ok := c.ask("Introduce la NUEVA CANTIDAD TOTAL de stock: ")
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	delta, err := c.translator.AbsoluteDelta(id, raw)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if err := c.executor.ApplyDelta(ctx, id, delta); err != nil {
		c.printf("Error: %v\n", err)
	}
}

// handleAdjust intención relativa: el valor introducido ya es el delta.
func (c *Console) handleAdjust(ctx context.Context, fields []string) {
	id, ok := c.parseItemID(fields)
	if !ok {
		return
	}
	raw, ok := c.ask("Introduce la cantidad a AJUSTAR (ej: 10 para añadir, -5 para quitar): ")
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	delta, err := c.translator.RelativeDelta(raw)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if err := c.executor.ApplyDelta(ctx, id, delta); err != nil {
		c.printf("Error: %v\n", err)
	}
}

func (c *Console) handleClear(ctx context.Context) {
	snap := c.store.Snapshot()
	if snap == nil || len(snap.Movements) == 0 {
		c.printf("No hay movimientos registrados.\n")
		return
	}
	cleared, err := c.guard.ClearHistory(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if !cleared {
		c.printf("Operación cancelada.\n")
	}
}

func (c *Console) parseItemID(fields []string) (int64, bool) {
	if len(fields) < 2 {
		c.printf("Falta el id del ítem (ej: set 1).\n")
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		c.printf("Error: el id debe ser un entero.\n")
		return 0, false
	}
	return id, true
}

func (c *Console) ask(prompt string) (string, bool) {
	c.printf("%s", prompt)
	return c.readLine()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// render pinta el estado completo: banda de error si la última
// sincronización falló (los datos viejos se conservan debajo), la tabla de
// ítems y el historial.
func (c *Console) render() {
	c.printf("\n══ Gestión de Inventario ══\n")

	if err := c.store.LastError(); err != nil {
		c.printf("⚠ No se pudo conectar con el servidor: %v\n", err)
	}

	snap := c.store.Snapshot()
	if snap == nil {
		c.printf("(sin datos todavía: usa 'refresh' cuando el servidor esté disponible)\n")
		c.printHelp()
		return
	}

	c.printf("\nStock actual:\n")
	c.printf("  %-4s %-14s %-15s %s\n", "ID", "SKU", "EAN13", "STOCK")
	for _, it := range snap.Items {
		c.printf("  %-4d %-14s %-15s %d\n", it.ID, it.SKU, it.EAN13, it.Stock)
	}

	c.printf("\nHistorial de movimientos:\n")
	if len(snap.Movements) == 0 {
		c.printf("  No hay movimientos registrados.\n")
	} else {
		for _, m := range snap.Movements {
			c.printf("  %s - Ítem %d - Cambio: %+d\n",
				m.Timestamp.Local().Format("02/01/2006 15:04:05"), m.ItemID, m.Change)
		}
	}
	c.printHelp()
}

func (c *Console) printHelp() {
	comandos := "set <id> | adjust <id> | refresh | salir"
	// El borrado solo se ofrece cuando hay historial que borrar.
	if snap := c.store.Snapshot(); snap != nil && len(snap.Movements) > 0 {
		comandos = "set <id> | adjust <id> | clear | refresh | salir"
	}
	c.printf("\nComandos: %s\n", comandos)
}
