package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const paymentColumns = `id, order_id, amount, status, payment_type, transaction_id, paid_at, created_at`

// Payment persists payment rows.
type Payment struct {
	db *sql.DB
}

func NewPayment(db *sql.DB) *Payment {
	return &Payment{db: db}
}

func scanPayment(row interface{ Scan(...any) error }) (*structs.Payment, error) {
	var p structs.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.PaymentType,
		&p.TransactionID, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *Payment) Create(ctx context.Context, p *structs.Payment) (*structs.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, amount, status, payment_type, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentColumns,
		p.OrderID, p.Amount, p.Status, p.PaymentType, p.TransactionID)
	return scanPayment(row)
}

func (r *Payment) GetByID(ctx context.Context, id int) (*structs.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	return scanPayment(row)
}

func (r *Payment) List(ctx context.Context, f *structs.PaymentListFilter, limit, offset int) ([]*structs.Payment, int, error) {
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
		`SELECT COUNT(*) FROM payments`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+paymentColumns+` FROM payments%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := make([]*structs.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}

// ListByOrder returns every payment for an order, newest first.
func (r *Payment) ListByOrder(ctx context.Context, orderID int) ([]*structs.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY id DESC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*structs.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *Payment) Update(ctx context.Context, id int, p *structs.PaymentUpdate) (*structs.Payment, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Amount != nil {
		set("amount", *p.Amount)
	}
	if p.Status != nil {
		set("status", *p.Status)
	}
	if p.PaymentType != nil {
		set("payment_type", *p.PaymentType)
	}
	if p.TransactionID != nil {
		set("transaction_id", *p.TransactionID)
	}
	if p.PaidAt != nil {
		set("paid_at", *p.PaidAt)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE payments SET %s WHERE id = $%d RETURNING `+paymentColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanPayment(row)
}

func (r *Payment) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
