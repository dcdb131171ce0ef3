package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name_uz TEXT NOT NULL,
		name_ru TEXT NOT NULL,
		name_en TEXT NOT NULL,
		image_url TEXT,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
		name_uz TEXT NOT NULL,
		name_ru TEXT NOT NULL,
		name_en TEXT NOT NULL,
		description_uz TEXT NOT NULL DEFAULT '',
		description_ru TEXT NOT NULL DEFAULT '',
		description_en TEXT NOT NULL DEFAULT '',
		ingredients_uz TEXT NOT NULL DEFAULT '',
		ingredients_ru TEXT NOT NULL DEFAULT '',
		ingredients_en TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL CHECK (price > 0),
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS promotions (
		id BIGSERIAL PRIMARY KEY,
		title_uz TEXT NOT NULL,
		title_ru TEXT NOT NULL,
		title_en TEXT NOT NULL,
		description_uz TEXT NOT NULL DEFAULT '',
		description_ru TEXT NOT NULL DEFAULT '',
		description_en TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL CHECK (price > 0),
		discount_percent INT NOT NULL DEFAULT 0 CHECK (discount_percent BETWEEN 0 AND 100),
		image_url TEXT,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS text_contents (
		id BIGSERIAL PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		text_uz TEXT NOT NULL,
		text_ru TEXT NOT NULL,
		text_en TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		comment TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT 'uz',
		total_amount BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id BIGINT REFERENCES menu_items(id) ON DELETE SET NULL,
		promotion_id BIGINT REFERENCES promotions(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		quantity INT NOT NULL CHECK (quantity > 0),
		price BIGINT NOT NULL
	)`,
	"CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category_id)",
	"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
