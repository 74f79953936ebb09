package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const carReportColumns = `id, car_id, report_type, data, created_at`

// CarReport persists car report rows.
type CarReport struct {
	db *sql.DB
}

func NewCarReport(db *sql.DB) *CarReport {
	return &CarReport{db: db}
}

func scanCarReport(row interface{ Scan(...any) error }) (*structs.CarReport, error) {
	var c structs.CarReport
	var data []byte
	err := row.Scan(&c.ID, &c.CarID, &c.ReportType, &data, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	c.Data = data
	return &c, nil
}

func (r *CarReport) Create(ctx context.Context, c *structs.CarReport) (*structs.CarReport, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO car_reports (car_id, report_type, data)
		VALUES ($1, $2, $3)
		RETURNING `+carReportColumns,
		c.CarID, c.ReportType, []byte(c.Data))
	return scanCarReport(row)
}

func (r *CarReport) GetByID(ctx context.Context, id int) (*structs.CarReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+carReportColumns+` FROM car_reports WHERE id = $1`, id)
	return scanCarReport(row)
}

func (r *CarReport) List(ctx context.Context, f *structs.CarReportListFilter, limit, offset int) ([]*structs.CarReport, int, error) {
	var w where
	if f != nil {
		if f.CarID != nil {
			w.addf("car_id = ?", *f.CarID)
		}
		if f.ReportType != "" {
			w.addf("report_type = ?", f.ReportType)
		}
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM car_reports`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+carReportColumns+` FROM car_reports%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reports := make([]*structs.CarReport, 0)
	for rows.Next() {
		c, err := scanCarReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, c)
	}
	return reports, total, rows.Err()
}

// ListByCar returns every report of a car, newest first.
func (r *CarReport) ListByCar(ctx context.Context, carID int) ([]*structs.CarReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+carReportColumns+` FROM car_reports WHERE car_id = $1 ORDER BY id DESC`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*structs.CarReport, 0)
	for rows.Next() {
		c, err := scanCarReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, c)
	}
	return reports, rows.Err()
}

func (r *CarReport) Update(ctx context.Context, id int, c *structs.CarReportUpdate) (*structs.CarReport, error) {
	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if c.ReportType != nil {
		set("report_type", *c.ReportType)
	}
	if c.Data != nil {
		set("data", []byte(c.Data))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE car_reports SET %s WHERE id = $%d RETURNING `+carReportColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanCarReport(row)
}

func (r *CarReport) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM car_reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
