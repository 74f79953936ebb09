package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const carColumns = `id, vin, make, model, year, mileage, price, condition, color,
	engine_type, transmission, status, description, created_at, updated_at`

// carSortColumns whitelists the columns a listing may sort by.
var carSortColumns = map[string]string{
	"price":      "price",
	"year":       "year",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// Car persists car rows.
type Car struct {
	db *sql.DB
}

func NewCar(db *sql.DB) *Car {
	return &Car{db: db}
}

func scanCar(row interface{ Scan(...any) error }) (*structs.Car, error) {
	var c structs.Car
	err := row.Scan(&c.ID, &c.VIN, &c.Make, &c.Model, &c.Year, &c.Mileage,
		&c.Price, &c.Condition, &c.Color, &c.EngineType, &c.Transmission,
		&c.Status, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Create inserts a car. The vin unique constraint surfaces as an error the
// caller can test with IsUniqueViolation.
func (r *Car) Create(ctx context.Context, c *structs.Car) (*structs.Car, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cars (vin, make, model, year, mileage, price, condition,
			color, engine_type, transmission, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+carColumns,
		c.VIN, c.Make, c.Model, c.Year, c.Mileage, c.Price, c.Condition,
		c.Color, c.EngineType, c.Transmission, c.Status, c.Description)
	return scanCar(row)
}

func (r *Car) GetByID(ctx context.Context, id int) (*structs.Car, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
	return scanCar(row)
}

// carFilterWhere translates the list filter into WHERE conditions. Make and
// model are exact matches; only the numeric fields are range filters.
func carFilterWhere(f *structs.CarListFilter) where {
	var w where
	if f == nil {
		return w
	}
	if f.Make != "" {
		w.addf("make = ?", f.Make)
	}
	if f.Model != "" {
		w.addf("model = ?", f.Model)
	}
	if f.Status != "" {
		w.addf("status = ?", f.Status)
	}
	if f.EngineType != "" {
		w.addf("engine_type = ?", f.EngineType)
	}
	if f.PriceMin != nil {
		w.addf("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		w.addf("price <= ?", *f.PriceMax)
	}
	if f.YearMin != nil {
		w.addf("year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		w.addf("year <= ?", *f.YearMax)
	}
	return w
}

func (r *Car) List(ctx context.Context, f *structs.CarListFilter, limit, offset int) ([]*structs.Car, int, error) {
	w := carFilterWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cars`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "id"
	if f != nil && f.SortBy != "" {
		if col, ok := carSortColumns[f.SortBy]; ok {
			order = col
			if strings.EqualFold(f.SortDir, "desc") {
				order += " DESC"
			}
		}
	}

	query := fmt.Sprintf(`SELECT `+carColumns+` FROM cars%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		w.clause(), order, w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cars := make([]*structs.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	return cars, total, rows.Err()
}

func (r *Car) Update(ctx context.Context, id int, c *structs.CarUpdate) (*structs.Car, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if c.Make != nil {
		set("make", *c.Make)
	}
	if c.Model != nil {
		set("model", *c.Model)
	}
	if c.Year != nil {
		set("year", *c.Year)
	}
	if c.Mileage != nil {
		set("mileage", *c.Mileage)
	}
	if c.Price != nil {
		set("price", *c.Price)
	}
	if c.Condition != nil {
		set("condition", *c.Condition)
	}
	if c.Color != nil {
		set("color", *c.Color)
	}
	if c.EngineType != nil {
		set("engine_type", *c.EngineType)
	}
	if c.Transmission != nil {
		set("transmission", *c.Transmission)
	}
	if c.Status != nil {
		set("status", *c.Status)
	}
	if c.Description != nil {
		set("description", *c.Description)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE cars SET %s WHERE id = $%d RETURNING `+carColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanCar(row)
}

func (r *Car) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
