package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bisame/internal/db"
)

// Store is the data access abstraction for the products domain.
type Store interface {
	Create(ctx context.Context, p *Product) error
	GetByCode(ctx context.Context, code string) (*Product, error)
	List(ctx context.Context, limit, offset int) ([]*Product, int, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, code string) error
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &Repository{db: db}
}

const productColumns = `id, code, name, description, price, vendor_name, vendor_email, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (code, name, description, price, vendor_name, vendor_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRowContext(
		ctx, query, p.Code, p.Name, p.Description, p.Price, p.VendorInfo.Name, p.VendorInfo.Email,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, "products_code_key") {
			return ErrDuplicateCode
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return list, total, nil
}

func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]*Product, error) {
	where, args := filter.clauses()

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	list, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

// clauses builds the WHERE conditions with positional arguments in a fixed order.
func (f SearchFilter) clauses() ([]string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != "" {
		add(`name ILIKE $%d`, likePattern(f.Name))
	}
	if f.VendorName != "" {
		add(`vendor_name ILIKE $%d`, likePattern(f.VendorName))
	}
	if f.Code != "" {
		add(`code = $%d`, f.Code)
	}
	if f.MinPrice != nil {
		add(`price >= $%d`, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(`price <= $%d`, *f.MaxPrice)
	}
	return where, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *Repository) Update(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, vendor_name = $4, vendor_email = $5, updated_at = NOW()
		WHERE code = $6
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRowContext(
		ctx, query, p.Name, p.Description, p.Price, p.VendorInfo.Name, p.VendorInfo.Email, p.Code,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*Product, error) {
	var p Product
	if err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Price,
		&p.VendorInfo.Name, &p.VendorInfo.Email, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	list := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
