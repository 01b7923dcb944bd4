package stock

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// clearPrompt texto de confirmación del borrado de historial.
const clearPrompt = "¿Seguro que quieres borrar todo el historial de movimientos? Esta acción no se puede deshacer."

// Guard protege la única operación irreversible del cliente: el borrado
// completo del historial de movimientos. Sin confirmación expresa no sale
// ninguna petición. La operación es idempotente: borrar un historial ya vacío
// es seguro (la capa de presentación además solo la ofrece con historial).
type Guard struct {
	authority Authority
	store     *Store
	confirmer Confirmer
	log       *logger.Logger
}

// NewGuard construye el guard de acciones destructivas.
func NewGuard(authority Authority, store *Store, confirmer Confirmer, log *logger.Logger) *Guard {
	return &Guard{authority: authority, store: store, confirmer: confirmer, log: log}
}

// ClearHistory pide confirmación; si el operador la niega es un no-op sin
// peticiones ni cambios de estado (cleared=false, err=nil). Confirmado, borra
// la colección de movimientos (2xx incluido 204 cuentan como éxito) y dispara
// exactamente un Refresh. En fallo no hay refresh y el Snapshot no se toca.
func (g *Guard) ClearHistory(ctx context.Context) (cleared bool, err error) {
	if !g.confirmer.Confirm(clearPrompt) {
		g.log.Debug().Msg("borrado de historial cancelado por el operador")
		return false, nil
	}
	if err := g.authority.ClearMovements(ctx); err != nil {
		g.log.Warn().Err(err).Msg("no se pudo borrar el historial")
		return false, err
	}
	g.log.Info().Msg("historial de movimientos borrado")
	return true, g.store.Refresh(ctx)
}
