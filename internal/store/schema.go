package store

import (
	"context"
	"fmt"
)

// QueueDayConstraint backs the one-queue-number-per-day invariant.
const QueueDayConstraint = "orders_queue_date_queue_number_key"

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS customers (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		phone varchar(20) NOT NULL UNIQUE,
		full_name varchar(100),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_id uuid REFERENCES customers(id),
		items text NOT NULL,
		customer_name varchar(100) NOT NULL,
		customer_phone varchar(20) NOT NULL,
		total_amount varchar(20) NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'pending',
		queue_date date NOT NULL DEFAULT CURRENT_DATE,
		queue_number integer NOT NULL,
		estimated_time integer NOT NULL DEFAULT 0,
		payment_status varchar(20) NOT NULL DEFAULT 'pending',
		payment_method varchar(20) NOT NULL DEFAULT 'card',
		check_in_time timestamptz,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT ` + QueueDayConstraint + ` UNIQUE (queue_date, queue_number)
	)`,
	// Orders tables that predate per-day numbering lack queue_date and the
	// constraint; CREATE TABLE IF NOT EXISTS skips them.
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS queue_date date`,
	`UPDATE orders SET queue_date = created_at::date WHERE queue_date IS NULL`,
	`ALTER TABLE orders ALTER COLUMN queue_date SET DEFAULT CURRENT_DATE`,
	`ALTER TABLE orders ALTER COLUMN queue_date SET NOT NULL`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + QueueDayConstraint + `') THEN
			ALTER TABLE orders ADD CONSTRAINT ` + QueueDayConstraint + ` UNIQUE (queue_date, queue_number);
		END IF;
	END $$`,
	`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS menu_inventory (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		menu_item_id varchar(50) NOT NULL,
		date date NOT NULL,
		available_quantity integer NOT NULL DEFAULT 100 CHECK (available_quantity >= 0),
		sold_quantity integer NOT NULL DEFAULT 0 CHECK (sold_quantity >= 0),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		UNIQUE (menu_item_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id varchar(100) PRIMARY KEY,
		order_id uuid REFERENCES orders(id),
		amount varchar(20) NOT NULL,
		payment_method varchar(20) NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'pending',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS customer_issues (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_id uuid REFERENCES customers(id),
		order_id uuid REFERENCES orders(id),
		issue_type varchar(30) NOT NULL,
		description text NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'open',
		priority varchar(20) NOT NULL DEFAULT 'medium',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates any missing table and brings an older orders table up
// to per-day numbering. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
