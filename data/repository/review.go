package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const reviewColumns = `id, car_id, user_id, customer_name, rating, comment, created_at`

// Review persists review rows.
type Review struct {
	db *sql.DB
}

func NewReview(db *sql.DB) *Review {
	return &Review{db: db}
}

func scanReview(row interface{ Scan(...any) error }) (*structs.Review, error) {
	var v structs.Review
	err := row.Scan(&v.ID, &v.CarID, &v.UserID, &v.CustomerName, &v.Rating,
		&v.Comment, &v.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *Review) Create(ctx context.Context, v *structs.Review) (*structs.Review, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (car_id, user_id, customer_name, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		v.CarID, v.UserID, v.CustomerName, v.Rating, v.Comment)
	return scanReview(row)
}

func (r *Review) GetByID(ctx context.Context, id int) (*structs.Review, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	return scanReview(row)
}

func (r *Review) List(ctx context.Context, f *structs.ReviewListFilter, limit, offset int) ([]*structs.Review, int, error) {
	var w where
	if f != nil {
		if f.CarID != nil {
			w.addf("car_id = ?", *f.CarID)
		}
		if f.UserID != nil {
			w.addf("user_id = ?", *f.UserID)
		}
		if f.RatingMin != nil {
			w.addf("rating >= ?", *f.RatingMin)
		}
		if f.RatingMax != nil {
			w.addf("rating <= ?", *f.RatingMax)
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+reviewColumns+` FROM reviews%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := make([]*structs.Review, 0)
	for rows.Next() {
		v, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, v)
	}
	return reviews, total, rows.Err()
}

// ListByCar returns every review for a car, newest first.
func (r *Review) ListByCar(ctx context.Context, carID int) ([]*structs.Review, error) {
	return r.listAll(ctx, `car_id = $1`, carID)
}

// ListByUser returns every review left by a user, newest first.
func (r *Review) ListByUser(ctx context.Context, userID int) ([]*structs.Review, error) {
	return r.listAll(ctx, `user_id = $1`, userID)
}

func (r *Review) listAll(ctx context.Context, cond string, arg any) ([]*structs.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE `+cond+` ORDER BY id DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*structs.Review, 0)
	for rows.Next() {
		v, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, v)
	}
	return reviews, rows.Err()
}

func (r *Review) Update(ctx context.Context, id int, v *structs.ReviewUpdate) (*structs.Review, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if v.CustomerName != nil {
		set("customer_name", *v.CustomerName)
	}
	if v.Rating != nil {
		set("rating", *v.Rating)
	}
	if v.Comment != nil {
		set("comment", *v.Comment)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE reviews SET %s WHERE id = $%d RETURNING `+reviewColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanReview(row)
}

func (r *Review) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
