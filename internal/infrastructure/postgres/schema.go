package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea las tablas si no existen al iniciar la aplicación.
func EnsureSchema(ctx context.Context, q Querier) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS items (
			id    BIGSERIAL PRIMARY KEY,
			sku   TEXT NOT NULL UNIQUE,
			ean13 TEXT NOT NULL UNIQUE,
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0)
		);
		CREATE TABLE IF NOT EXISTS movements (
			id        BIGSERIAL PRIMARY KEY,
			item_id   BIGINT NOT NULL REFERENCES items(id),
			change    BIGINT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_movements_timestamp ON movements (timestamp DESC);`
	if _, err := q.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
