package domain

import "time"

// Item ítem del inventario. El dueño del registro es el backend; el cliente
// solo mantiene una copia de lectura dentro del último Snapshot y nunca la
// muta directamente: todo cambio pasa por un ajuste confirmado y una relectura.
type Item struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku"`
	EAN13 string `json:"ean13"`
	Stock int64  `json:"stock"`
}

// Movement entrada inmutable del historial: un cambio de cantidad con signo
// aplicado a un ítem en un instante. La única operación de colección que
// existe es el borrado completo del historial.
type Movement struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Change    int64     `json:"change"`
	Timestamp time.Time `json:"timestamp"`
}
