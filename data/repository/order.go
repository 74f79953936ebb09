package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const orderColumns = `id, customer_name, customer_phone, customer_email, user_id, car_id,
	status, payment_method, total_amount, delivery_address, delivery_date, created_at, updated_at`

// Order persists order rows.
type Order struct {
	db *sql.DB
}

func NewOrder(db *sql.DB) *Order {
	return &Order{db: db}
}

func scanOrder(row interface{ Scan(...any) error }) (*structs.Order, error) {
	var o structs.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.UserID, &o.CarID, &o.Status, &o.PaymentMethod, &o.TotalAmount,
		&o.DeliveryAddress, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *Order) Create(ctx context.Context, o *structs.Order) (*structs.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_phone, customer_email, user_id,
			car_id, status, payment_method, total_amount, delivery_address, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+orderColumns,
		o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.UserID, o.CarID,
		o.Status, o.PaymentMethod, o.TotalAmount, o.DeliveryAddress, o.DeliveryDate)
	return scanOrder(row)
}

func (r *Order) GetByID(ctx context.Context, id int) (*structs.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *Order) List(ctx context.Context, f *structs.OrderListFilter, limit, offset int) ([]*structs.Order, int, error) {
	var w where
	if f != nil {
		if f.UserID != nil {
			w.addf("user_id = ?", *f.UserID)
		}
		if f.CarID != nil {
			w.addf("car_id = ?", *f.CarID)
		}
		if f.Status != "" {
			w.addf("status = ?", f.Status)
		}
		if f.PaymentMethod != "" {
			w.addf("payment_method = ?", f.PaymentMethod)
		}
		if f.Q != "" {
			q := "%" + f.Q + "%"
			w.addf("(customer_name ILIKE ? OR customer_phone ILIKE ? OR customer_email ILIKE ?)", q, q, q)
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+orderColumns+` FROM orders%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*structs.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// ListByUser returns every order belonging to a user, newest first.
func (r *Order) ListByUser(ctx context.Context, userID int) ([]*structs.Order, error) {
	return r.listAll(ctx, `user_id = $1`, userID)
}

// ListByCar returns every order referencing a car, newest first.
func (r *Order) ListByCar(ctx context.Context, carID int) ([]*structs.Order, error) {
	return r.listAll(ctx, `car_id = $1`, carID)
}

// CountByUser reports how many orders reference a user.
func (r *Order) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *Order) listAll(ctx context.Context, cond string, arg any) ([]*structs.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+cond+` ORDER BY id DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*structs.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *Order) Update(ctx context.Context, id int, o *structs.OrderUpdate) (*structs.Order, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if o.CustomerName != nil {
		set("customer_name", *o.CustomerName)
	}
	if o.CustomerPhone != nil {
		set("customer_phone", *o.CustomerPhone)
	}
	if o.CustomerEmail != nil {
		set("customer_email", *o.CustomerEmail)
	}
	if o.Status != nil {
		set("status", *o.Status)
	}
	if o.PaymentMethod != nil {
		set("payment_method", *o.PaymentMethod)
	}
	if o.TotalAmount != nil {
		set("total_amount", *o.TotalAmount)
	}
	if o.DeliveryAddress != nil {
		set("delivery_address", *o.DeliveryAddress)
	}
	if o.DeliveryDate != nil {
		set("delivery_date", *o.DeliveryDate)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE orders SET %s WHERE id = $%d RETURNING `+orderColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanOrder(row)
}

func (r *Order) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
