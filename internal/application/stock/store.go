package stock

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// Snapshot par completo e internamente consistente de ítems y movimientos,
// confirmado por el servidor en una misma ronda de lectura. Los slices son de
// solo lectura una vez publicados.
type Snapshot struct {
	Items     []domain.Item
	Movements []domain.Movement
	FetchedAt time.Time
}

// Store contenedor del último Snapshot confirmado. Un único escritor
// (Refresh) lo reemplaza completo y de forma atómica; los lectores nunca ven
// un par de colecciones a medio actualizar ni un valor calculado en local.
type Store struct {
	authority Authority
	log       *logger.Logger

	current atomic.Pointer[Snapshot]
	lastErr atomic.Pointer[syncError]
}

// syncError envoltorio para poder publicar/limpiar el último error de
// sincronización con un puntero atómico.
type syncError struct{ err error }

// NewStore construye el store de sincronización.
func NewStore(authority Authority, log *logger.Logger) *Store {
	return &Store{authority: authority, log: log}
}

// Refresh descarga las colecciones completas de ítems y movimientos en dos
// peticiones concurrentes, sin orden entre ellas, y reemplaza el Snapshot en
// una sola escritura. Si cualquiera de las dos falla, el Snapshot anterior se
// conserva tal cual (datos viejos visibles antes que pantalla vacía) y queda
// registrado el último error para la banda de estado.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		items     []domain.Item
		movements []domain.Movement
	)
	// errgroup.Group sin contexto compartido: un fallo en una petición no
	// cancela la otra, ambas corren hasta su respuesta.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		items, err = s.authority.ListItems(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		movements, err = s.authority.ListMovements(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.lastErr.Store(&syncError{err: err})
		s.log.Error().Err(err).Msg("refresh fallido; se conserva el snapshot anterior")
		return err
	}

	s.current.Store(&Snapshot{Items: items, Movements: movements, FetchedAt: time.Now()})
	s.lastErr.Store(nil)
	s.log.Debug().
		Int("items", len(items)).
		Int("movimientos", len(movements)).
		Msg("snapshot reemplazado")
	return nil
}

// Snapshot devuelve el último Snapshot confirmado, o nil si todavía no hubo
// una primera sincronización exitosa.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// LastError devuelve el error de la última sincronización fallida, o nil si
// la última terminó bien.
func (s *Store) LastError() error {
	if e := s.lastErr.Load(); e != nil {
		return e.err
	}
	return nil
}

// ItemByID busca un ítem dentro del último Snapshot.
func (s *Store) ItemByID(id int64) (domain.Item, bool) {
	snap := s.current.Load()
	if snap == nil {
		return domain.Item{}, false
	}
	for _, it := range snap.Items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}
