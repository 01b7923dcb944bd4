package stock

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// Executor único camino de escritura del cliente: envía el delta de una
// acción ("establecer" y "ajustar" llegan aquí igual, solo cambia cómo se
// calculó el delta) y, únicamente si el servidor lo confirma, resincroniza.
type Executor struct {
	authority Authority
	store     *Store
	log       *logger.Logger
}

// NewExecutor construye el ejecutor de mutaciones.
func NewExecutor(authority Authority, store *Store, log *logger.Logger) *Executor {
	return &Executor{authority: authority, store: store, log: log}
}

// ApplyDelta envía una única petición de ajuste {itemId, delta}. En éxito
// dispara exactamente un Refresh y espera a que termine: lo que se muestra al
// cerrar la acción es la verdad del servidor, no el delta solicitado. En
// fallo no hay refresh ni reintento; el Snapshot queda exactamente como
// estaba y el error (con el detalle del servidor si lo hay) sube al operador.
func (e *Executor) ApplyDelta(ctx context.Context, itemID, delta int64) error {
	if err := e.authority.AdjustStock(ctx, itemID, delta); err != nil {
		e.log.Warn().Err(err).
			Int64("item_id", itemID).
			Int64("delta", delta).
			Msg("ajuste rechazado")
		return err
	}
	e.log.Info().
		Int64("item_id", itemID).
		Int64("delta", delta).
		Msg("ajuste confirmado")
	return e.store.Refresh(ctx)
}
