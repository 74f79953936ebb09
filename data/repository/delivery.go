package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const deliveryColumns = `id, order_id, status, tracking_number, delivered_at, created_at`

// Delivery persists delivery rows.
type Delivery struct {
	db *sql.DB
}

func NewDelivery(db *sql.DB) *Delivery {
	return &Delivery{db: db}
}

func scanDelivery(row interface{ Scan(...any) error }) (*structs.Delivery, error) {
	var d structs.Delivery
	err := row.Scan(&d.ID, &d.OrderID, &d.Status, &d.TrackingNumber,
		&d.DeliveredAt, &d.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *Delivery) Create(ctx context.Context, d *structs.Delivery) (*structs.Delivery, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO deliveries (order_id, status, tracking_number)
		VALUES ($1, $2, $3)
		RETURNING `+deliveryColumns,
		d.OrderID, d.Status, d.TrackingNumber)
	return scanDelivery(row)
}

func (r *Delivery) GetByID(ctx context.Context, id int) (*structs.Delivery, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
	return scanDelivery(row)
}

func (r *Delivery) List(ctx context.Context, f *structs.DeliveryListFilter, limit, offset int) ([]*structs.Delivery, int, error) {
	var w where
	if f != nil {
		if f.OrderID != nil {
			w.addf("order_id = ?", *f.OrderID)
		}
		if f.Status != "" {
			w.addf("status = ?", f.Status)
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deliveries`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+deliveryColumns+` FROM deliveries%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	deliveries := make([]*structs.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, 0, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, total, rows.Err()
}

// ListByOrder returns every delivery for an order, newest first.
func (r *Delivery) ListByOrder(ctx context.Context, orderID int) ([]*structs.Delivery, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1 ORDER BY id DESC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]*structs.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func (r *Delivery) Update(ctx context.Context, id int, d *structs.DeliveryUpdate) (*structs.Delivery, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if d.Status != nil {
		set("status", *d.Status)
	}
	if d.TrackingNumber != nil {
		set("tracking_number", *d.TrackingNumber)
	}
	if d.DeliveredAt != nil {
		set("delivered_at", *d.DeliveredAt)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE deliveries SET %s WHERE id = $%d RETURNING `+deliveryColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanDelivery(row)
}

func (r *Delivery) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
