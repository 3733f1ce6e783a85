package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bisame/internal/db"
)

type Store interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &Repository{db: db}
}

const userColumns = `id, fullname, email, password, role, auth_type, provider_id, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (fullname, email, password, role, auth_type, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user.Email = NormalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = RoleCustomer
	}
	if user.AuthType == "" {
		user.AuthType = AuthTypeLocal
	}

	var hash any
	if user.Password.IsSet() {
		hash = user.Password.hash
	}

	err := r.db.QueryRowContext(
		ctx, query, user.FullName, user.Email, hash, string(user.Role), string(user.AuthType), user.ProviderID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, "users_email_key") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return scanUser(r.db.QueryRowContext(ctx, query, NormalizeEmail(email)))
}

func (r *Repository) List(ctx context.Context) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := []*User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return list, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	var (
		user     User
		role     string
		authType string
	)

	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Password.hash,
		&role,
		&authType,
		&user.ProviderID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	user.Role = Role(role)
	user.AuthType = AuthType(authType)

	return &user, nil
}
