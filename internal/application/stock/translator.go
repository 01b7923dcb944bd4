package stock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
)

// Translator traduce las dos intenciones del operador ("dejar el stock en X"
// y "ajustar en ±N") al único primitivo que entiende el servidor: un delta
// con signo. La validación ocurre aquí, antes de tocar la red.
type Translator struct {
	store *Store
}

// NewTranslator construye el traductor sobre el store de sincronización.
func NewTranslator(store *Store) *Translator {
	return &Translator{store: store}
}

// AbsoluteDelta convierte un objetivo absoluto de stock en el delta a enviar,
// calculado contra el stock cacheado del ítem en el último Snapshot.
// rawTarget debe parsear como entero no negativo; si no, la operación aborta
// sin enviar nada. Si el ítem no está en el Snapshot también aborta: nunca se
// asume baseline 0 sobre una caché desfasada.
//
// El baseline puede estar viejo frente a escritores concurrentes; el servidor
// es el árbitro final y puede dejar un stock distinto al pedido. Semántica
// best-effort asumida: no hay verificación de valor previo.
func (t *Translator) AbsoluteDelta(itemID int64, rawTarget string) (int64, error) {
	target, err := strconv.ParseInt(strings.TrimSpace(rawTarget), 10, 64)
	if err != nil || target < 0 {
		return 0, fmt.Errorf("%w: la nueva cantidad debe ser un entero no negativo", domain.ErrInvalidInput)
	}
	item, ok := t.store.ItemByID(itemID)
	if !ok {
		return 0, fmt.Errorf("%w (id %d)", domain.ErrItemNotCached, itemID)
	}
	return target - item.Stock, nil
}

// RelativeDelta parsea un ajuste ya relativo (ej: 10 para añadir, -5 para
// quitar) y lo devuelve sin transformación; no necesita consultar la caché.
func (t *Translator) RelativeDelta(raw string) (int64, error) {
	delta, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: el ajuste debe ser un entero", domain.ErrInvalidInput)
	}
	return delta, nil
}
