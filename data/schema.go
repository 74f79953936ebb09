package data

import "context"

// schema holds the bootstrap DDL. Statements are idempotent so startup
// can run them unconditionally.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		full_name VARCHAR(128),
		phone VARCHAR(32),
		role VARCHAR(32) NOT NULL DEFAULT 'customer',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cars (
		id BIGSERIAL PRIMARY KEY,
		vin VARCHAR(17) NOT NULL UNIQUE,
		make VARCHAR(64) NOT NULL,
		model VARCHAR(128) NOT NULL,
		year INT NOT NULL,
		mileage INT NOT NULL DEFAULT 0,
		price NUMERIC(12,2) NOT NULL,
		condition VARCHAR(16) NOT NULL,
		color VARCHAR(64) NOT NULL,
		engine_type VARCHAR(16) NOT NULL,
		transmission VARCHAR(16) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'available',
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name VARCHAR(128) NOT NULL,
		customer_phone VARCHAR(64) NOT NULL,
		customer_email VARCHAR(255),
		user_id BIGINT REFERENCES users(id),
		car_id BIGINT NOT NULL REFERENCES cars(id),
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		payment_method VARCHAR(16) NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL,
		delivery_address TEXT,
		delivery_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		amount NUMERIC(12,2) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		payment_type VARCHAR(16) NOT NULL,
		transaction_id VARCHAR(128),
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		tracking_number VARCHAR(128),
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		car_id BIGINT NOT NULL REFERENCES cars(id),
		user_id BIGINT REFERENCES users(id),
		customer_name VARCHAR(255) NOT NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS car_photos (
		id BIGSERIAL PRIMARY KEY,
		car_id BIGINT NOT NULL REFERENCES cars(id),
		url VARCHAR(1024) NOT NULL,
		is_main BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS car_reports (
		id BIGSERIAL PRIMARY KEY,
		car_id BIGINT NOT NULL REFERENCES cars(id),
		report_type VARCHAR(32) NOT NULL,
		data JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_car_id ON orders(car_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_order_id ON deliveries(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_car_id ON reviews(car_id)`,
	`CREATE INDEX IF NOT EXISTS idx_car_photos_car_id ON car_photos(car_id)`,
	`CREATE INDEX IF NOT EXISTS idx_car_reports_car_id ON car_reports(car_id)`,
}

// Migrate creates the tables and indexes when they do not exist yet.
func (d *Data) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	d.log.Info(ctx, "Database schema ready")
	return nil
}
