package postgres

import (
	"context"
	"fmt"
)

// schemaDDL crea las tablas si no existen. Idempotente.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS companies (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	email      VARCHAR(255),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS warehouses (
	id         BIGSERIAL PRIMARY KEY,
	company_id BIGINT NOT NULL REFERENCES companies(id),
	name       VARCHAR(255) NOT NULL,
	address    TEXT
);
CREATE INDEX IF NOT EXISTS idx_warehouses_company ON warehouses(company_id);

CREATE TABLE IF NOT EXISTS products (
	id                  BIGSERIAL PRIMARY KEY,
	sku                 VARCHAR(100) NOT NULL UNIQUE,
	name                VARCHAR(255) NOT NULL,
	price               NUMERIC(10,2) NOT NULL CHECK (price > 0),
	low_stock_threshold INTEGER NOT NULL DEFAULT 10,
	is_bundle           BOOLEAN NOT NULL DEFAULT false,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS inventory (
	id           BIGSERIAL PRIMARY KEY,
	product_id   BIGINT NOT NULL REFERENCES products(id),
	warehouse_id BIGINT NOT NULL REFERENCES warehouses(id),
	quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	UNIQUE (product_id, warehouse_id)
);

CREATE TABLE IF NOT EXISTS inventory_history (
	id                BIGSERIAL PRIMARY KEY,
	product_id        BIGINT NOT NULL REFERENCES products(id),
	warehouse_id      BIGINT NOT NULL REFERENCES warehouses(id),
	change_type       VARCHAR(20) NOT NULL,
	quantity_change   INTEGER NOT NULL,
	previous_quantity INTEGER NOT NULL,
	new_quantity      INTEGER NOT NULL,
	changed_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	notes             TEXT
);
CREATE INDEX IF NOT EXISTS idx_inventory_history_sales
	ON inventory_history(warehouse_id, change_type, changed_at);

CREATE TABLE IF NOT EXISTS suppliers (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(255) NOT NULL,
	contact_email VARCHAR(255),
	contact_phone VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS product_suppliers (
	product_id  BIGINT NOT NULL REFERENCES products(id),
	supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
	is_primary  BOOLEAN NOT NULL DEFAULT false,
	PRIMARY KEY (product_id, supplier_id)
);
`

// Migrate aplica el esquema sobre la base de datos.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
