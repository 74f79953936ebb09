package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carmarket/structs"
)

const userColumns = `id, email, hashed_password, is_active, full_name, phone, role, created_at, updated_at`

// User persists user rows.
type User struct {
	db *sql.DB
}

func NewUser(db *sql.DB) *User {
	return &User{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*structs.User, error) {
	var u structs.User
	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive,
		&u.FullName, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// Create inserts a user. The email unique constraint surfaces as an error
// the caller can test with IsUniqueViolation.
func (r *User) Create(ctx context.Context, u *structs.User) (*structs.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, hashed_password, is_active, full_name, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		u.Email, u.HashedPassword, u.IsActive, u.FullName, u.Phone, u.Role)
	return scanUser(row)
}

func (r *User) GetByID(ctx context.Context, id int) (*structs.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *User) GetByEmail(ctx context.Context, email string) (*structs.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *User) List(ctx context.Context, f *structs.UserListFilter, limit, offset int) ([]*structs.User, int, error) {
	var w where
	if f != nil && f.IsActive != nil {
		w.addf("is_active = ?", *f.IsActive)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+userColumns+` FROM users%s ORDER BY id LIMIT $%d OFFSET $%d`,
		w.clause(), w.next(), w.next()+1)
	rows, err := r.db.QueryContext(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]*structs.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *User) Update(ctx context.Context, id int, u *structs.UserUpdate) (*structs.User, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.FullName != nil {
		set("full_name", *u.FullName)
	}
	if u.Phone != nil {
		set("phone", *u.Phone)
	}
	if u.IsActive != nil {
		set("is_active", *u.IsActive)
	}
	if u.Role != nil {
		set("role", *u.Role)
	}
	args = append(args, id)
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args)), args...)
	return scanUser(row)
}

func (r *User) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
