package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const carPhotoColumns = `id, car_id, url, is_main, created_at`

// CarPhoto persists car photo rows.
type CarPhoto struct {
	db *sql.DB
}

func NewCarPhoto(db *sql.DB) *CarPhoto {
	return &CarPhoto{db: db}
}

func scanCarPhoto(row interface{ Scan(...any) error }) (*structs.CarPhoto, error) {
	var p structs.CarPhoto
	err := row.Scan(&p.ID, &p.CarID, &p.URL, &p.IsMain, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *CarPhoto) Create(ctx context.Context, p *structs.CarPhoto) (*structs.CarPhoto, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO car_photos (car_id, url, is_main)
		VALUES ($1, $2, $3)
		RETURNING `+carPhotoColumns,
		p.CarID, p.URL, p.IsMain)
	return scanCarPhoto(row)
}

func (r *CarPhoto) GetByID(ctx context.Context, id int) (*structs.CarPhoto, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+carPhotoColumns+` FROM car_photos WHERE id = $1`, id)
	return scanCarPhoto(row)
}

func (r *CarPhoto) List(ctx context.Context, f *structs.CarPhotoListFilter, limit, offset int) ([]*structs.CarPhoto, int, error) {
	var w where
	if f != nil {
		if f.CarID != nil {
			w.addf("car_id = ?", *f.CarID)
		}
		if f.IsMain != nil {
			w.addf("is_main = ?", *f.IsMain)
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM car_photos`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+carPhotoColumns+` FROM car_photos%s ORDER BY id LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	photos := make([]*structs.CarPhoto, 0)
	for rows.Next() {
		p, err := scanCarPhoto(rows)
		if err != nil {
			return nil, 0, err
		}
		photos = append(photos, p)
	}
	return photos, total, rows.Err()
}

// ListByCar returns every photo of a car, main photo first.
func (r *CarPhoto) ListByCar(ctx context.Context, carID int) ([]*structs.CarPhoto, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+carPhotoColumns+` FROM car_photos WHERE car_id = $1 ORDER BY is_main DESC, id`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]*structs.CarPhoto, 0)
	for rows.Next() {
		p, err := scanCarPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// ClearMain unsets the main flag on every photo of a car. Used before
// promoting another photo to main.
func (r *CarPhoto) ClearMain(ctx context.Context, carID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE car_photos SET is_main = FALSE WHERE car_id = $1`, carID)
	return err
}

func (r *CarPhoto) Update(ctx context.Context, id int, p *structs.CarPhotoUpdate) (*structs.CarPhoto, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.URL != nil {
		set("url", *p.URL)
	}
	if p.IsMain != nil {
		set("is_main", *p.IsMain)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE car_photos SET %s WHERE id = $%d RETURNING `+carPhotoColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanCarPhoto(row)
}

func (r *CarPhoto) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM car_photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
